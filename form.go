package postgen

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// FormPage returns the editor page. When s.Message is set it is shown as an
// alert; when s.Preview is set the generated post is shown read-only below
// the form.
func FormPage(site SiteConfig, s FormState) templ.Component {
	site.setDefaults()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeFormPage(&buf, site, s)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeFormPage(buf *bytes.Buffer, site SiteConfig, s FormState) {
	esc := templ.EscapeString[string]
	w := buf.WriteString

	w("<!DOCTYPE html>\n")
	w(`<html lang="` + esc(site.Lang) + `">` + "\n")
	w("<head>\n")
	w(`  <meta charset="utf-8" />` + "\n")
	w(`  <meta name="viewport" content="width=device-width, initial-scale=1" />` + "\n")
	w("  <title>Nový článok – " + esc(site.Name) + "</title>\n")
	w(`  <link rel="stylesheet" href="/public/form.css" />` + "\n")
	w("</head>\n")
	w("<body>\n")
	w(`  <main class="editor">` + "\n")
	w("    <h1>Nový článok</h1>\n")
	if s.Message != "" {
		w(`    <div class="alert" role="alert">` + esc(s.Message) + "</div>\n")
	}
	w(`    <form id="post-form" method="post" action="/compose/" enctype="multipart/form-data">` + "\n")
	w(`      <input type="hidden" name="_csrf" value="` + esc(s.CSRFToken) + `" />` + "\n")
	w(`      <label for="title">Nadpis</label>` + "\n")
	w(`      <input id="title" name="title" type="text" required value="` + esc(s.Title) + `" />` + "\n")
	w(`      <label for="date">Dátum</label>` + "\n")
	w(`      <input id="date" name="date" type="date" value="` + esc(s.Date) + `" />` + "\n")
	w(`      <label for="imageFile">Obrázok</label>` + "\n")
	w(`      <input id="imageFile" name="imageFile" type="file" accept="image/*" />` + "\n")
	w(`      <label for="imageAlt">Popis obrázka</label>` + "\n")
	w(`      <input id="imageAlt" name="imageAlt" type="text" value="` + esc(s.ImageAlt) + `" />` + "\n")
	w(`      <label for="content">Obsah</label>` + "\n")
	w(`      <textarea id="content" name="content" rows="16" required>` + esc(s.Content) + "</textarea>\n")
	w(`      <label class="inline"><input type="checkbox" name="preview" value="1" /> Len náhľad</label>` + "\n")
	w(`      <button type="submit">Vygenerovať HTML</button>` + "\n")
	w("    </form>\n")
	if s.Preview != "" {
		w(`    <label for="html-preview">Náhľad HTML</label>` + "\n")
		w(`    <textarea id="html-preview" rows="24" readonly>` + esc(s.Preview) + "</textarea>\n")
	}
	w("  </main>\n")
	w("</body>\n")
	w("</html>\n")
}
