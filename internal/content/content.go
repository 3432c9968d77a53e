// Package content holds the portfolio copy: hero, bio, timeline, skills, and
// projects. It is loaded from a YAML file so the text can change without a
// rebuild; a missing file falls back to the built-in defaults.
package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ContentPath is the default content file, relative to the working directory.
const ContentPath = "config/content.yaml"

type Content struct {
	Hero     Hero      `yaml:"hero"`
	Bio      Bio       `yaml:"bio"`
	Timeline []Entry   `yaml:"timeline"`
	Skills   []Group   `yaml:"skills"`
	Projects []Project `yaml:"projects"`
}

type Hero struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

type Bio struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
}

// Entry is one timeline card.
type Entry struct {
	Year    string `yaml:"year"`
	Title   string `yaml:"title"`
	Org     string `yaml:"org"`
	Summary string `yaml:"summary"`
}

// Group is one named cluster of skills.
type Group struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

type Project struct {
	Name    string   `yaml:"name"`
	Summary string   `yaml:"summary"`
	Link    string   `yaml:"link"`
	Tags    []string `yaml:"tags"`
}

// Default returns placeholder content so the app renders something sensible
// before a real content file exists.
func Default() Content {
	return Content{
		Hero: Hero{Name: "Your Name", Tagline: "Engineer. Builder of small, precise things."},
		Bio: Bio{
			Heading:    "About",
			Paragraphs: []string{"Edit config/content.yaml to put your own story here."},
		},
		Timeline: []Entry{
			{Year: "now", Title: "This site", Org: "cubefolio", Summary: "A mirror cube that never stops solving itself."},
		},
		Skills: []Group{
			{Name: "Tools", Items: []string{"Go", "raylib"}},
		},
		Projects: []Project{
			{Name: "cubefolio", Summary: "This very page.", Tags: []string{"go", "3d"}},
		},
	}
}

// Load reads content from path. A missing file returns Default() without
// error; a malformed file returns Default() and the parse error.
func Load(path string) (Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	var c Content
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Default(), fmt.Errorf("content: %w", err)
	}
	return c, nil
}
