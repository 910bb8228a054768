package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/repoship/repoship/internal/errors"
)

const gitignoreContent = `# Environment
.env
.env.*

# Editors
.idea/
.vscode/

# OS
.DS_Store
Thumbs.db

# Build output
dist/
*.log
`

const licenseTemplate = `MIT License

Copyright (c) %d

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`

const readmeTemplate = `# %s

Published with repoship.

## Repository

%s
`

// Scaffold writes starter files into a project directory
type Scaffold struct{}

// New creates a Scaffold
func New() *Scaffold {
	return &Scaffold{}
}

// Ensure writes README.md, LICENSE and .gitignore into dir when they do not
// exist yet. Files that are already present are left untouched. It returns
// the names of the files it wrote.
func (s *Scaffold) Ensure(dir, repoURL string) ([]string, error) {
	files := map[string]string{
		"README.md":  fmt.Sprintf(readmeTemplate, filepath.Base(dir), repoURL),
		"LICENSE":    fmt.Sprintf(licenseTemplate, time.Now().Year()),
		".gitignore": gitignoreContent,
	}

	// Stable order so log output and tests are deterministic
	names := []string{"README.md", "LICENSE", ".gitignore"}

	var written []string
	for _, name := range names {
		path := filepath.Join(dir, name)

		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return written, errors.Wrapf(err, "failed to check %s", name)
		}

		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			return written, errors.Wrapf(err, "failed to write %s", name)
		}
		written = append(written, name)
	}

	return written, nil
}
