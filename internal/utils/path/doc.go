// Package pathutils resolves user-supplied workspace paths.
package pathutils
