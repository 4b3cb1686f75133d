package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

const (
	// ErrorHeading is the fixed heading of the load failure view.
	ErrorHeading = "Error Loading Website Data"

	// ErrorText is the fixed explanation shown under ErrorHeading.
	ErrorText = "There was a problem loading the website content. Please try refreshing or check back later."
)

var (
	layoutTmpl    = template.Must(template.New("layout").Parse(layoutHTML))
	errorViewTmpl = template.Must(template.New("error").Parse(errorViewHTML))
)

// Render writes the whole page as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := layoutTmpl.Execute(w, d); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// ErrorView builds the static error body shown when the page cannot load.
func ErrorView(details string) template.HTML {
	var buf bytes.Buffer
	// The template is static apart from an escaped string; it cannot fail.
	_ = errorViewTmpl.Execute(&buf, details)
	return template.HTML(buf.String())
}

const errorViewHTML = `
<div class="load-error" style="padding: 2rem; text-align: center; font-family: sans-serif;">
  <h1>` + ErrorHeading + `</h1>
  <p>` + ErrorText + `</p>
  <p style="color: #666; font-size: 0.9rem;">Details: {{.}}</p>
</div>
`

// layoutHTML is the default host page. Each hook element is emitted only
// when the document defines it.
const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
{{- range .Stylesheets}}
  <link rel="stylesheet" href="{{.}}">
{{- end}}
</head>
<body>
{{- if .Replaced}}
{{.Body}}
{{- else}}
{{- with .Get ".navbar"}}
  <nav class="navbar">
    <a href="#about">About</a>
    <a href="#news">News</a>
    <a href="#publication">Publications</a>
    <a href="#awards">Awards</a>
    <a href="#contact">Contact</a>
  </nav>
{{- end}}
  <main class="container">
    <section id="about" class="about-section">
      <div class="profile-card">
{{- with .Get ".profile-image"}}
        <img class="profile-image" src="{{.Attr "src"}}" alt="{{.Attr "alt"}}">
{{- end}}
{{- with .Get ".photo-caption"}}
        <p class="photo-caption">{{.HTML}}</p>
{{- end}}
      </div>
      <div class="profile-text">
{{- with .Get ".profile-name"}}
        <h1 class="profile-name">{{.HTML}}</h1>
{{- end}}
{{- with .Get ".profile-title"}}
        <p class="profile-title">{{.HTML}}</p>
{{- end}}
{{- with .Get ".bio-text"}}
        <div class="bio-text">{{.HTML}}</div>
{{- end}}
      </div>
    </section>
    <aside class="sidebar">
{{- with .Get ".sidebar-content"}}
      <div class="sidebar-content">{{.HTML}}</div>
{{- end}}
    </aside>
    <section id="news" class="news-section">
      <h2 class="section-title">News</h2>
{{- with .Get ".news-list"}}
      <ul class="news-list">{{.HTML}}</ul>
{{- end}}
    </section>
    <section class="publications-section"{{with .Get "#publication"}} id="publication"{{if .Hidden}} style="display: none"{{end}}{{end}}>
{{- with .Get "#includedPubs"}}
      <div id="includedPubs">{{.HTML}}</div>
{{- end}}
    </section>
    <section class="awards-section"{{with .Get "#awards"}} id="awards"{{if .Hidden}} style="display: none"{{end}}{{end}}>
      <h2 class="section-title">Honors &amp; Awards</h2>
{{- with .Get "#awards .awards-list"}}
      <div class="awards-list">{{.HTML}}</div>
{{- end}}
    </section>
    <section id="contact" class="contact-section">
      <h2 class="section-title">Contact</h2>
{{- with .Get ".contact-email"}}
      <p>Email: <a class="contact-email" href="{{.Attr "href"}}">{{.HTML}}</a></p>
{{- end}}
    </section>
  </main>
  <footer class="footer">
{{- with .Get ".footer-date"}}
    <p>Last updated: <span class="footer-date">{{.HTML}}</span></p>
{{- end}}
  </footer>
{{- range .Scripts}}
  <script async src="{{.}}" charset="utf-8"></script>
{{- end}}
{{- with .Behaviors}}
  <script>
(function() {
  var threshold = {{.ScrollThreshold}};
  var headerOffset = {{.HeaderOffset}};
  var navbar = document.querySelector('.navbar');
  if (navbar) {
    window.addEventListener('scroll', function() {
      if (window.scrollY > threshold) {
        navbar.classList.add('scrolled');
      } else {
        navbar.classList.remove('scrolled');
      }
    });
  }
  document.querySelectorAll('a[href^="#"]').forEach(function(anchor) {
    anchor.addEventListener('click', function(e) {
      var href = this.getAttribute('href');
      if (href === '#') return;
      var target = document.getElementById(href.slice(1));
      if (!target) return;
      e.preventDefault();
      window.scrollTo({ top: target.offsetTop - headerOffset, behavior: 'smooth' });
    });
  });
})();
  </script>
{{- end}}
{{- end}}
</body>
</html>
`
