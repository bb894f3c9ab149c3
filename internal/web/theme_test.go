package web

import (
	"testing"

	"donorlink-web/internal/route"
	"donorlink-web/internal/session"

	"github.com/stretchr/testify/assert"
)

func TestThemeCSS(t *testing.T) {
	css := string(DefaultTheme.CSS())

	assert.Contains(t, css, "--color-footer-bg: #0a1435;")
	assert.Contains(t, css, "--color-shadow-support: rgba(0, 0, 0, 0.16) 0px 1px 4px;")
	assert.Contains(t, css, "--media-mobile: 768px;")
	assert.Contains(t, css, "@media (max-width: 768px)")
	assert.Contains(t, css, "@media (max-width: 998px)")
	assert.NotContains(t, css, ";;")
}

func TestCSSName(t *testing.T) {
	assert.Equal(t, "footer-bg", cssName("footer_bg"))
	assert.Equal(t, "shadow-support", cssName("shadowSupport"))
	assert.Equal(t, "btn", cssName("btn"))
}

func TestNavFor(t *testing.T) {
	labels := func(links []navLink) []string {
		var out []string
		for _, l := range links {
			out = append(out, l.Path)
		}
		return out
	}

	assert.Equal(t, []string{"/login", "/signup"}, labels(navFor(session.LoggedOut(), route.Login)))
	assert.Equal(t, []string{"/", "/about", "/admin-dashboard"}, labels(navFor(session.LoggedIn(session.RoleAdmin), route.Home)))

	donor := navFor(session.LoggedIn(session.RoleDonor), route.Cart)
	assert.Contains(t, labels(donor), "/cart")
	assert.NotContains(t, labels(donor), "/singleproduct/:id")
	for _, l := range donor {
		assert.Equal(t, l.Path == "/cart", l.Active)
	}
}
