package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPage(t *testing.T) {
	page := renderPage("play.example.com", "2222")

	assert.Contains(t, page, "ssh -p 2222 play.example.com")
	assert.Contains(t, page, "Hosted at play.example.com")
	assert.NotContains(t, page, "{{.")
}

func TestRenderPageDefaultPort(t *testing.T) {
	page := renderPage("play.example.com", "22")
	assert.Contains(t, page, "<pre>ssh play.example.com</pre>")
}
