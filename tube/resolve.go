package tube

import (
	"net/url"
	"strings"
)

// absolute turns a media reference found on page into a full URL.
//
//	https://host/a  kept
//	//host/a        https:
//	/a              page scheme and host
//	a               page URL up to its last slash
func absolute(page *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	u, err := url.Parse(ref)
	if err != nil {
		// Unparseable references are handed on as is and fail at download time.
		return ref
	}

	if u.Host != "" {
		if u.Scheme == "" {
			return "https:" + ref
		}
		return ref
	}

	if strings.HasPrefix(ref, "/") {
		return page.Scheme + "://" + page.Host + ref
	}

	dir := *page
	dir.RawQuery, dir.Fragment = "", ""
	if dir.Path == "" {
		dir.Path = "/"
	}
	base := dir.String()
	return base[:strings.LastIndex(base, "/")] + "/" + ref
}
