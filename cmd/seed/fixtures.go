package main

import (
	_ "embed"
	"fmt"

	"bloglist/internal/domain/services"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type seedUser struct {
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

type seedBlog struct {
	Owner  string `yaml:"owner"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	URL    string `yaml:"url"`
	Likes  int    `yaml:"likes"`
}

type fixtures struct {
	Users []seedUser `yaml:"users"`
	Blogs []seedBlog `yaml:"blogs"`
}

// loadFixtures parses fixture data and checks every blog names a seeded owner
func loadFixtures(data []byte) (*fixtures, error) {
	var f fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	known := make(map[string]bool, len(f.Users))
	for _, u := range f.Users {
		known[u.Username] = true
	}
	for i, b := range f.Blogs {
		if !known[b.Owner] {
			return nil, fmt.Errorf("blog %d (%q): unknown owner %q", i, b.Title, b.Owner)
		}
	}

	return &f, nil
}

func (u seedUser) request() *services.RegisterUserRequest {
	return &services.RegisterUserRequest{
		Username: u.Username,
		Name:     u.Name,
		Password: u.Password,
	}
}

func (b seedBlog) request() *services.CreateBlogRequest {
	likes := b.Likes
	return &services.CreateBlogRequest{
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  &likes,
	}
}
