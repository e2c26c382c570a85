// Package farmmarket holds project-wide metadata.
package farmmarket

// Version is the current release version of the market CLI.
const Version = "0.1.0"
