// Package fileutil holds small file helpers shared by the CLI and tests.
package fileutil
