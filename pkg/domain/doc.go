// Package domain contains the entities exchanged between the calculator
// service and its callers (CLI, interactive session, HTTP API). They carry no
// infrastructure concerns so every surface can share them.
package domain
