// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package sidebar_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oneclickio/oneclick/sidebar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePkg = `// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package widgets is a sample package.
package widgets

import "strconv"

const (
	// DefaultLimit is the default page size.
	DefaultLimit = 10

	internalLimit = 5
)

const (
	// Unclaimed widget has no owner.
	Unclaimed State = iota
	// Claimed widget is bound to an owner.
	Claimed
)

// State represents the widget claim lifecycle position.
type State int

// String returns the string representation of the state.
func (s State) String() string {
	return strconv.Itoa(int(s))
}

// Widget is a single device entry. It carries identity and
// lifecycle data.
type Widget struct {
	ID   string
	Name string
}

// Store persists widgets.
type Store interface {
	// Save persists a widget.
	Save(w Widget) error
}

// NewWidget returns a widget with the given name.
func NewWidget(name string) Widget {
	return Widget{Name: name}
}

func helper() {}
`

func writeSamplePkg(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widgets.go"), []byte(samplePkg), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widgets_test.go"), []byte("package widgets\n\n// TestOnly should never be indexed.\ntype TestOnly struct{}\n"), 0o644))

	return dir
}

func TestBuild(t *testing.T) {
	dir := writeSamplePkg(t)

	idx, err := sidebar.Build(dir, "widgets")
	require.NoError(t, err)
	assert.Equal(t, "widgets", idx.Package)

	structs := names(idx.Items[sidebar.KindStruct])
	assert.Equal(t, []string{"Widget"}, structs)

	enums := names(idx.Items[sidebar.KindEnum])
	assert.Equal(t, []string{"State"}, enums)

	interfaces := names(idx.Items[sidebar.KindInterface])
	assert.Equal(t, []string{"Store"}, interfaces)

	fns := names(idx.Items[sidebar.KindFn])
	assert.Contains(t, fns, "NewWidget")
	assert.NotContains(t, fns, "helper")

	consts := names(idx.Items[sidebar.KindConstant])
	assert.Contains(t, consts, "DefaultLimit")
	assert.NotContains(t, consts, "internalLimit")
	assert.NotContains(t, consts, "Unclaimed", "enum values belong to their type, not the constants section")

	for _, items := range idx.Items {
		assert.NotContains(t, names(items), "TestOnly")
	}
}

func TestBuildSummaries(t *testing.T) {
	dir := writeSamplePkg(t)

	idx, err := sidebar.Build(dir, "widgets")
	require.NoError(t, err)

	var widget sidebar.Item
	for _, item := range idx.Items[sidebar.KindStruct] {
		if item.Name == "Widget" {
			widget = item
		}
	}
	assert.Equal(t, "Widget is a single device entry.", widget.Summary, "summary should be the first sentence only")
}

func TestBuildErrors(t *testing.T) {
	dir := writeSamplePkg(t)

	_, err := sidebar.Build(dir, "nosuchpkg")
	assert.ErrorIs(t, err, sidebar.ErrPkgNotFound)

	_, err = sidebar.Build(filepath.Join(dir, "missing"), "widgets")
	assert.Error(t, err)
}

func TestMarshalJSON(t *testing.T) {
	dir := writeSamplePkg(t)

	idx, err := sidebar.Build(dir, "widgets")
	require.NoError(t, err)

	data, err := json.Marshal(idx)
	require.NoError(t, err)

	var out map[string][][2]string
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Contains(t, out, "struct")
	assert.Contains(t, out, "enum")
	assert.Contains(t, out, "interface")
	assert.Contains(t, out, "fn")
	assert.Equal(t, [2]string{"Widget", "Widget is a single device entry."}, out["struct"][0])
}

func TestSearch(t *testing.T) {
	dir := writeSamplePkg(t)

	idx, err := sidebar.Build(dir, "widgets")
	require.NoError(t, err)

	cases := []struct {
		desc  string
		query string
		first string
		empty bool
	}{
		{"exact match ranks first", "widget", "Widget", false},
		{"prefix match", "sta", "State", false},
		{"substring match", "tore", "Store", false},
		{"summary match", "persists", "Store", false},
		{"case insensitive", "WIDGET", "Widget", false},
		{"no match", "zzz", "", true},
		{"empty query", "  ", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			matches := idx.Search(tc.query)
			if tc.empty {
				assert.Empty(t, matches)
				return
			}
			require.NotEmpty(t, matches)
			assert.Equal(t, tc.first, matches[0].Item.Name)
		})
	}
}

func names(items []sidebar.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}

	return out
}
