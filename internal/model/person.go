package model

import "strings"

// Person represents an author, maintainer or other contact.
// All parts are optional.
type Person struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}

// String formats the person as "Name <email> (url)", omitting empty parts
func (p Person) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.Email != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("<" + p.Email + ">")
	}
	if p.URL != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("(" + p.URL + ")")
	}
	return b.String()
}

// ParsePerson parses a "Name <email>" style contact string.
// Obfuscated forms like "jane at example.com" are normalized first.
func ParsePerson(text string) Person {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, " at ", "@")
	text = strings.ReplaceAll(text, " -at- ", "@")
	text = strings.ReplaceAll(text, " -dot- ", ".")
	text = strings.ReplaceAll(text, "[AT]", "@")

	var p Person
	if open := strings.Index(text, "("); open >= 0 && strings.HasSuffix(text, ")") {
		inner := text[open+1 : len(text)-1]
		if strings.HasPrefix(inner, "http://") || strings.HasPrefix(inner, "https://") {
			p.URL = inner
			text = strings.TrimSpace(text[:open])
		}
	}
	if open := strings.Index(text, "<"); open >= 0 && strings.HasSuffix(text, ">") {
		p.Email = strings.TrimSpace(text[open+1 : len(text)-1])
		p.Name = strings.TrimSpace(text[:open])
	} else if strings.Contains(text, "@") && !strings.Contains(text, " ") {
		p.Email = text
	} else {
		p.Name = text
	}
	return p
}
