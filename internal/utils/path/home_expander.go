package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant = "~"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander converts leading tilde shortcuts in workspace paths to the user's home directory.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	resolveOnce           sync.Once
	homeDirectory         string
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: provider}
}

// Expand resolves "~" and "~/..." to the home directory. Other paths, including "~user" forms,
// and paths that cannot be resolved because the home directory is unknown are returned unchanged.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}

	remainder := strings.TrimPrefix(candidatePath, tildeSymbolConstant)
	if len(remainder) > 0 && remainder[0] != '/' && remainder[0] != os.PathSeparator {
		return candidatePath
	}

	homeDirectory := expander.resolveHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}

	return filepath.Join(homeDirectory, remainder)
}

func (expander *HomeExpander) resolveHomeDirectory() string {
	expander.resolveOnce.Do(func() {
		homeDirectory, lookupError := expander.homeDirectoryProvider()
		if lookupError == nil {
			expander.homeDirectory = homeDirectory
		}
	})
	return expander.homeDirectory
}
