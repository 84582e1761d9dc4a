package keycell

// Version is the keycell module version.
const Version = "0.1.0"
