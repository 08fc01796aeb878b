package vibeeq

const Version = "0.1.0"

var Revision = "HEAD"
