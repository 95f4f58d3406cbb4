//go:build !unix

package platform

func canExecute(string) bool { return true }
