// Package runtime provides a context type that holds the settings and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime
