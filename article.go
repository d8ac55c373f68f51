package postgen

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const defaultImageAlt = "Ilustračný obrázok"

// Article returns a templ.Component that renders d as a complete,
// self-contained HTML document branded with site.
func Article(d Draft, site SiteConfig) templ.Component {
	site.setDefaults()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeArticle(&buf, d, site)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// BuildArticleHTML renders d to a string.
func BuildArticleHTML(ctx context.Context, d Draft, site SiteConfig) (string, error) {
	var sb strings.Builder
	if err := Article(d, site).Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeArticle(buf *bytes.Buffer, d Draft, site SiteConfig) {
	safeTitle := EscapeAttr(d.Title)
	desc := d.Excerpt
	if desc == "" {
		desc = d.Title
	}
	safeDesc := EscapeAttr(desc)
	alt := d.ImageAlt
	if alt == "" {
		alt = d.Title
	}
	if alt == "" {
		alt = defaultImageAlt
	}
	safeAlt := EscapeAttr(alt)
	safeImage := EscapeAttr(d.ImageDataURL)
	safeName := EscapeAttr(site.Name)
	base := EscapeAttr(site.AssetBase)

	w := buf.WriteString

	w("<!DOCTYPE html>\n")
	w(`<html lang="` + EscapeAttr(site.Lang) + `">` + "\n")
	w("<head>\n")
	w(`  <meta charset="utf-8" />` + "\n")
	w(`  <meta name="viewport" content="width=device-width, initial-scale=1" />` + "\n")
	w("  <title>" + safeTitle + " – " + safeName + "</title>\n")
	w(`  <link rel="icon" href="` + base + `favicon.ico" />` + "\n")
	w(`  <link rel="stylesheet" href="` + base + `styles.css" />` + "\n\n")
	w(`  <meta name="description" content="` + safeDesc + `" />` + "\n")
	w(`  <meta property="og:title" content="` + safeTitle + " – " + safeName + `" />` + "\n")
	w(`  <meta property="og:description" content="` + safeDesc + `" />` + "\n")
	if d.ImageDataURL != "" {
		w(`  <meta property="og:image" content="` + safeImage + `" />` + "\n")
	}
	w("</head>\n")
	w("<body>\n")
	writeHeader(buf, site)
	writeReservationModal(buf, site)

	w(`  <main class="container" id="top">` + "\n")
	w(`    <article class="post-full card"`)
	if d.ISODate != "" {
		w(` data-published="` + EscapeAttr(d.ISODate) + `"`)
	}
	w(">\n")
	w(`      <div class="post-head">` + "\n")
	if d.DisplayDate != "" {
		w(`        <p class="post-meta">` + EscapeAttr(d.DisplayDate) + "</p>\n")
	}
	// The heading keeps the raw title, matching the published site.
	w("        <h1>" + d.Title + "</h1>\n")
	w("      </div>\n")
	if d.ImageDataURL != "" {
		w(`      <div class="post-hero">` + "\n")
		w(`        <img src="` + safeImage + `" alt="` + safeAlt + `">` + "\n")
		w("      </div>\n")
	}
	w(`      <div class="post-body">` + "\n")
	w(d.ContentHTML + "\n")
	w("      </div>\n")
	w("    </article>\n")
	w("  </main>\n\n")

	writeFooter(buf, site)
	w("</body>\n")
	w("</html>")
}

type navLink struct {
	href  string
	label string
}

var navLinks = []navLink{
	{"index.html#sluzby", "Služby"},
	{"index.html#cennik", "Cenník"},
	{"index.html#hodiny", "Ordinačné hodiny"},
	{"index.html#onas", "O nás"},
	{"index.html#kontakt", "Kontakt"},
}

func writeHeader(buf *bytes.Buffer, site SiteConfig) {
	base := EscapeAttr(site.AssetBase)
	name := EscapeAttr(site.Name)
	w := buf.WriteString

	w("  <header>\n")
	w(`    <div class="container">` + "\n")
	w(`      <nav aria-label="Primárna navigácia">` + "\n")
	w(`        <a class="brand" href="` + base + `index.html#top">` + "\n")
	w(`          <img class="brand-mark" src="` + base + `Images/Logo.png" alt="` + name + ` logo" />` + "\n")
	w("          <span>" + name + "</span>\n")
	w("        </a>\n")
	w(`        <button class="menu-toggle" aria-controls="primary-menu" aria-expanded="false" aria-label="Menu">☰</button>` + "\n")
	w(`        <div id="primary-menu" class="nav-links" role="menu">` + "\n")
	for _, l := range navLinks {
		w(`          <a href="` + base + l.href + `" role="menuitem">` + l.label + "</a>\n")
	}
	w(`          <a href="` + base + EscapeAttr(site.BlogPath) + `" role="menuitem">Blog</a>` + "\n")
	w(`          <a class="btn" href="javascript:void(0)" onclick="onClickOpen()" aria-label="Otvoriť rezerváciu" role="menuitem">Rezervovať termín</a>` + "\n")
	w("        </div>\n")
	w("      </nav>\n")
	w("    </div>\n")
	w("  </header>\n\n")
}

func writeReservationModal(buf *bytes.Buffer, site SiteConfig) {
	w := buf.WriteString
	w("  <!-- Modal rezervácie -->\n")
	w(`  <div onclick="onClickClose()" style="height:100vh;width:100vw;display:none;position:fixed;top:0;left:0;justify-content:center;align-items:center;background-color:rgba(0,0,0,.6);z-index:1000" id="reservationModal">` + "\n")
	w(`    <iframe src="` + EscapeAttr(site.ReservationURL) + `" style="width:100%;max-width:1200px;border:none;border-radius:8px;height:80%"></iframe>` + "\n")
	w("  </div>\n\n")
}

// The copyright year is filled in by the browser when the page is opened.
const pageScript = `  <script>
    const onClickOpen = () => {
      document.getElementById("reservationModal").style.display = "flex";
      document.body.style.overflow = "hidden";
    };
    const onClickClose = () => {
      document.getElementById("reservationModal").style.display = "none";
      document.body.style.overflow = "";
    };
    (function(){
      const btn=document.querySelector('.menu-toggle');
      const menu=document.getElementById('primary-menu');
      if(btn&&menu){
        btn.addEventListener('click', ()=>{
          menu.classList.toggle('open');
          btn.setAttribute('aria-expanded', menu.classList.contains('open')?'true':'false');
        });
      }
      const y=document.getElementById('year');
      if(y) y.textContent=new Date().getFullYear();
    })();
  </script>
`

func writeFooter(buf *bytes.Buffer, site SiteConfig) {
	w := buf.WriteString
	w("  <footer>\n")
	w(`    <div class="container footer-flex">` + "\n")
	w(`      <p>© <span id="year"></span> ` + EscapeAttr(site.Name) + ". " + EscapeAttr(site.Rights) + "</p>\n")
	w("    </div>\n")
	w("  </footer>\n\n")
	w(pageScript)
}
