// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package parallaxdemo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFilesCarryHeader(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		head := string(data)
		if i := strings.Index(head, "\npackage "); i >= 0 {
			head = head[:i]
		}
		assert.Contains(t, head, "// SPDX-License-Identifier: AGPL-3.0-or-later", name)
		assert.Contains(t, head, "// File: apps/parallaxdemo/"+name+"\n", name)
		assert.Contains(t, head, "// Summary: ", name)
	}
}
