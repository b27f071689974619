package model

import "strings"

// Datum is one typed piece of upstream metadata. The set of
// implementations is closed: every variant maps to exactly one
// canonical field name, which is the key space of the store.
type Datum interface {
	// Field returns the canonical field name, e.g. "Repository-Browse"
	Field() string

	// String returns a display form of the value
	String() string
}

// String-valued fields. Each named type carries its own field name.
type (
	Name             string
	Version          string
	Homepage         string
	Repository       string
	RepositoryBrowse string
	BugDatabase      string
	BugSubmit        string
	Contact          string
	License          string
	Description      string
	Summary          string
	SecurityMD       string
	SecurityContact  string
	Copyright        string
	Documentation    string
	Download         string
	Wiki             string
	MailingList      string
	Archive          string
	Demo             string
	Funding          string
	Changelog        string
	Donation         string
	CargoCrate       string
	GoImportPath     string
	Registry         string
	FAQ              string

	// BugsDatabase is a legacy alias for BugDatabase still emitted by
	// some sources; an extrapolation rule promotes it and retires the
	// alias.
	BugsDatabase string
)

// List- and person-valued fields.
type (
	Keywords    []string
	Screenshots []string
	Author      []Person
	Maintainer  Person
)

func (Name) Field() string             { return "Name" }
func (Version) Field() string          { return "Version" }
func (Homepage) Field() string         { return "Homepage" }
func (Repository) Field() string       { return "Repository" }
func (RepositoryBrowse) Field() string { return "Repository-Browse" }
func (BugDatabase) Field() string      { return "Bug-Database" }
func (BugSubmit) Field() string        { return "Bug-Submit" }
func (Contact) Field() string          { return "Contact" }
func (License) Field() string          { return "License" }
func (Description) Field() string      { return "Description" }
func (Summary) Field() string          { return "Summary" }
func (SecurityMD) Field() string       { return "Security-MD" }
func (SecurityContact) Field() string  { return "Security-Contact" }
func (Copyright) Field() string        { return "Copyright" }
func (Documentation) Field() string    { return "Documentation" }
func (Download) Field() string         { return "Download" }
func (Wiki) Field() string             { return "Wiki" }
func (MailingList) Field() string      { return "MailingList" }
func (Archive) Field() string          { return "Archive" }
func (Demo) Field() string             { return "Demo" }
func (Funding) Field() string          { return "Funding" }
func (Changelog) Field() string        { return "Changelog" }
func (Donation) Field() string         { return "Donation" }
func (CargoCrate) Field() string       { return "Cargo-Crate" }
func (GoImportPath) Field() string     { return "Go-Import-Path" }
func (Registry) Field() string         { return "Registry" }
func (FAQ) Field() string              { return "FAQ" }
func (BugsDatabase) Field() string     { return "Bugs-Database" }
func (Keywords) Field() string         { return "Keywords" }
func (Screenshots) Field() string      { return "Screenshots" }
func (Author) Field() string           { return "Author" }
func (Maintainer) Field() string       { return "Maintainer" }

func (d Name) String() string             { return string(d) }
func (d Version) String() string          { return string(d) }
func (d Homepage) String() string         { return string(d) }
func (d Repository) String() string       { return string(d) }
func (d RepositoryBrowse) String() string { return string(d) }
func (d BugDatabase) String() string      { return string(d) }
func (d BugSubmit) String() string        { return string(d) }
func (d Contact) String() string          { return string(d) }
func (d License) String() string          { return string(d) }
func (d Description) String() string      { return string(d) }
func (d Summary) String() string          { return string(d) }
func (d SecurityMD) String() string       { return string(d) }
func (d SecurityContact) String() string  { return string(d) }
func (d Copyright) String() string        { return string(d) }
func (d Documentation) String() string    { return string(d) }
func (d Download) String() string         { return string(d) }
func (d Wiki) String() string             { return string(d) }
func (d MailingList) String() string      { return string(d) }
func (d Archive) String() string          { return string(d) }
func (d Demo) String() string             { return string(d) }
func (d Funding) String() string          { return string(d) }
func (d Changelog) String() string        { return string(d) }
func (d Donation) String() string         { return string(d) }
func (d CargoCrate) String() string       { return string(d) }
func (d GoImportPath) String() string     { return string(d) }
func (d Registry) String() string         { return string(d) }
func (d FAQ) String() string              { return string(d) }
func (d BugsDatabase) String() string     { return string(d) }

func (d Keywords) String() string    { return strings.Join(d, ", ") }
func (d Screenshots) String() string { return strings.Join(d, ", ") }

func (d Author) String() string {
	parts := make([]string, len(d))
	for i, p := range d {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func (d Maintainer) String() string { return Person(d).String() }

// DatumValue returns the underlying string for string-valued variants.
// List- and person-valued variants report false.
func DatumValue(d Datum) (string, bool) {
	switch v := d.(type) {
	case Name:
		return string(v), true
	case Version:
		return string(v), true
	case Homepage:
		return string(v), true
	case Repository:
		return string(v), true
	case RepositoryBrowse:
		return string(v), true
	case BugDatabase:
		return string(v), true
	case BugSubmit:
		return string(v), true
	case Contact:
		return string(v), true
	case License:
		return string(v), true
	case Description:
		return string(v), true
	case Summary:
		return string(v), true
	case SecurityMD:
		return string(v), true
	case SecurityContact:
		return string(v), true
	case Copyright:
		return string(v), true
	case Documentation:
		return string(v), true
	case Download:
		return string(v), true
	case Wiki:
		return string(v), true
	case MailingList:
		return string(v), true
	case Archive:
		return string(v), true
	case Demo:
		return string(v), true
	case Funding:
		return string(v), true
	case Changelog:
		return string(v), true
	case Donation:
		return string(v), true
	case CargoCrate:
		return string(v), true
	case GoImportPath:
		return string(v), true
	case Registry:
		return string(v), true
	case FAQ:
		return string(v), true
	case BugsDatabase:
		return string(v), true
	default:
		return "", false
	}
}
