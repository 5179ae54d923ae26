package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRestricted(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"warning cell", `<table><tr><td>Warning!</td><td>x</td></tr></table>`, true},
		{"restricted notice", `<p><b>This document is restricted to court users.</b></p>`, true},
		{"sealed notice", `<p><b>The document you are about to view is SEALED</b></p>`, true},
		{"case-insensitive", `<p><b>do NOT allow it to be seen by unauthorized persons</b></p>`, true},
		{"warning outside first cell", `<table><tr><td>Note</td><td>Warning!</td></tr></table>`, false},
		{"plain receipt", `<table><tr><td>Image</td></tr></table><b>Transaction Receipt</b>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRestricted(newPage(t, docURL, tt.html)))
		})
	}
}
