package version

// Version is the current version of this tool.
const Version = "0.1.0"
