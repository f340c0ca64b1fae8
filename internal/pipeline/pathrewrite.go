package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rewrittenAttrs lists the attribute holding a path, per element.
// Media elements, srcset and CSS url() are left alone.
var rewrittenAttrs = map[atom.Atom]string{
	atom.Img: "src",
	atom.A:   "href",
}

// RewriteRelativePaths turns relative image and link paths into absolute
// file:// URLs resolved against sourceDir, so that a document rendered from
// a temp file still finds them. An empty sourceDir leaves the HTML as is.
// Anchors, URLs, absolute paths and paths escaping sourceDir are kept.
func RewriteRelativePaths(htmlContent, sourceDir string) (string, error) {
	if sourceDir == "" {
		return htmlContent, nil
	}
	base, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}
	walkElements(doc, func(n *html.Node) {
		key, ok := rewrittenAttrs[n.DataAtom]
		if !ok {
			return
		}
		for i, a := range n.Attr {
			if a.Key != key || !isRelativePath(a.Val) {
				continue
			}
			abs := filepath.Join(base, a.Val)
			if !isPathUnderDir(abs, base) {
				continue
			}
			n.Attr[i].Val = pathToFileURL(abs)
		}
	})
	return renderHTML(doc, isFragment)
}

// isRelativePath reports whether path is a relative file path.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	if u, err := url.Parse(path); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return false // http:, https:, file:, data:, mailto: (a one-letter scheme is a drive)
	}
	return !filepath.IsAbs(path)
}

// isPathUnderDir reports whether absPath lies inside dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}
	return u.String()
}
