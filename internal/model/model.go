// Package model holds the settings records shared by the HTTP, service and
// persistence layers. Types here carry JSON tags only.
package model
