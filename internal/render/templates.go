package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// fragments holds every section fragment. Plain fields are escaped by
// html/template; fields typed template.HTML have already been through the
// Markup policy.
var fragments = template.Must(template.New("fragments").Parse(fragmentsHTML))

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing %s fragment: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

const fragmentsHTML = `
{{- define "caption" -}}
{{.Caption}}<br>
{{.Credit}} <a href="{{.CreditLink}}">{{.CreditName}}</a>
{{- end}}

{{- define "profile-name" -}}
{{.Name}}
{{.Social}}
{{- end}}

{{- define "social" -}}
<a href="{{.Twitter.URL}}" class="twitter-follow-button" data-show-count="true" data-size="medium" target="_blank" rel="noopener noreferrer">Follow {{.Twitter.Handle}}</a>
<a href="{{.Scholar.URL}}" target="_blank" rel="noopener noreferrer" aria-label="Google Scholar"><img src="{{.Scholar.Icon}}" alt="Google Scholar" width="28" height="28"></a>
<a href="{{.LinkedIn.URL}}" target="_blank" rel="noopener noreferrer" aria-label="LinkedIn"><img src="{{.LinkedIn.Icon}}" alt="LinkedIn" width="28" height="28"></a>
<a href="{{.GitHub.URL}}" target="_blank" rel="noopener noreferrer" aria-label="GitHub"><img src="{{.GitHub.Icon}}" alt="GitHub" width="28" height="28"></a>
{{- end}}

{{- define "paragraphs" -}}
{{range .}}<p>{{.}}</p>{{end}}
{{- end}}

{{- define "sidebar" -}}
<div class="sidebar-info-block">
  <h3 class="sidebar-info-title">Research Interests</h3>
  <div class="interests-tags">{{range .}}<span class="interest-tag">{{.}}</span>{{end}}</div>
</div>
{{- end}}

{{- define "news" -}}
{{range .}}<li class="news-item{{if .Important}} important{{end}}">{{with .Date}}<span class="news-date">{{.}}</span>{{end}}{{.Body}}</li>{{end}}
{{- end}}

{{- define "awards" -}}
{{range .}}
<div class="work-block">
  <div class="work-period">{{.Year}}</div>
  <div class="work-content">
    <h4>{{.Award}}</h4>
    {{- with .Paper}}
    <p>{{.}}</p>
    {{- end}}
  </div>
</div>
{{- end}}
{{- end}}

{{- define "publications" -}}
<h2 class="section-title">Publications</h2>
{{- range .}}
<h3 class="subsection-title">{{.Label}}</h3>
{{- range .Items}}
{{.}}
{{- end}}
{{- end}}
{{- end}}

{{- define "publication-item" -}}
<div class="publication-item">
  <div class="publication-venue">
    <span class="badge{{with .VenueClass}} {{.}}{{end}}">{{.Venue}}</span>
  </div>
  <div class="publication-content">
    <div class="publication-authors">{{.Authors}}</div>
    <div class="publication-title">
      <a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a>
    </div>
    {{- if .HasTags}}
    <div class="publication-tags">{{.Tags}}</div>
    {{- end}}
    {{- with .Note}}
    <div class="publication-note">{{.}}</div>
    {{- end}}
    {{- with .Award}}
    <div class="award-badge"><img src="{{$.AwardIcon}}" alt="Award"> {{.}}</div>
    {{- end}}
    {{- if .HasLinks}}
    <div class="publication-links">
      {{- range .Links}}
      <a href="{{.URL}}" target="_blank" rel="noopener noreferrer" aria-label="{{.Label}}"><img src="{{.Icon}}" alt="{{.Label}}" width="24" height="24"></a>
      {{- end}}
    </div>
    {{- end}}
  </div>
</div>
{{- end}}
`
