package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixtures_Embedded(t *testing.T) {
	fx, err := loadFixtures(fixturesYAML)
	require.NoError(t, err)
	assert.NotEmpty(t, fx.Users)
	assert.NotEmpty(t, fx.Blogs)

	req := fx.Blogs[0].request()
	require.NotNil(t, req.Likes)
	assert.Equal(t, fx.Blogs[0].Likes, *req.Likes)
}

func TestLoadFixtures_UnknownOwner(t *testing.T) {
	data := []byte(`
users:
  - username: root
    password: salainen
blogs:
  - owner: ghost
    title: t
    url: u
`)
	_, err := loadFixtures(data)
	assert.ErrorContains(t, err, `unknown owner "ghost"`)
}
