// Package util provides small helpers shared by confkit packages.
package util
