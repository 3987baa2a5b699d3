package xmlname

// Reserved namespace URIs from the XML and XML Schema recommendations. They
// carry no special treatment in the registry and intern like any other URI.
const (
	// XMLNamespace is the namespace bound to the reserved xml prefix.
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
	// XMLNSNamespace is the namespace of namespace declarations.
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
	// XSDNamespace is the XML Schema definition namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema"
	// XSINamespace is the XML Schema instance namespace.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
)
