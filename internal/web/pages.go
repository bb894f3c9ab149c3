package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"donorlink-web/internal/auth"
	"donorlink-web/internal/logger"
	"donorlink-web/internal/product"
	"donorlink-web/internal/route"
	"donorlink-web/internal/session"
	"donorlink-web/internal/user"

	"go.uber.org/zap"
)

// errNoIdentity means the session names a role but the request carries no
// valid access token, so per-user data cannot be loaded.
var errNoIdentity = errors.New("no access token for session")

var signupRoles = []session.Role{session.RoleDonor, session.RoleVolunteer, session.RoleAdmin}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	st := auth.StateFrom(ctx)

	d := route.Resolve(st, r.URL.Path)
	switch d.Kind {
	case route.Redirect:
		http.Redirect(w, r, d.Location, http.StatusFound)
	case route.NotFound:
		s.renderError(w, r, st, http.StatusNotFound)
	default:
		s.renderRoute(w, r, st, d.Route, d.Params, http.StatusOK, "")
	}
}

// renderRoute loads the data page id shows and renders it with the given
// status and error message.
func (s *Server) renderRoute(w http.ResponseWriter, r *http.Request, st session.State, id route.ID, params route.Params, status int, msg string) {
	ctx := r.Context()

	p := s.newPage(st, id)
	p.Status = status
	p.Error = msg

	if err := s.load(ctx, r, p, params); err != nil {
		switch {
		case errors.Is(err, errNoIdentity):
			http.Redirect(w, r, route.Path(route.Login), http.StatusFound)
		case errors.Is(err, product.ErrProductNotFound), errors.Is(err, product.ErrInvalidID):
			s.renderError(w, r, st, http.StatusNotFound)
		default:
			logger.FromCtx(ctx).Error("failed to load page",
				zap.String("route", string(id)),
				zap.Error(err),
			)
			s.renderError(w, r, st, http.StatusInternalServerError)
		}
		return
	}

	s.render(w, r, p)
}

func (s *Server) load(ctx context.Context, r *http.Request, p *pageData, params route.Params) error {
	ident, hasIdent := auth.IdentityFrom(ctx)

	switch p.Route {
	case route.Login:
		p.Email = r.PostFormValue("email")

	case route.Signup:
		p.Name = r.PostFormValue("name")
		p.Email = r.PostFormValue("email")
		p.Roles = signupRoles

	case route.Home:
		if !hasIdent {
			return nil
		}
		u, err := s.users.GetUserByID(ctx, ident.UserID)
		if err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		p.User = u

	case route.Products:
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		p.Query = r.URL.Query().Get("q")
		p.Page = page

		items, err := s.products.List(ctx, p.Query, page)
		if err != nil {
			return err
		}
		p.Products = items

	case route.SingleProduct:
		item, err := s.products.GetProductByID(ctx, params["id"])
		if err != nil {
			return err
		}
		p.Product = item
		p.Title = item.Name

	case route.Cart, route.Donate:
		if !hasIdent {
			return errNoIdentity
		}
		c, err := s.carts.GetCart(ctx, ident.UserID)
		if err != nil {
			return err
		}
		p.Cart = c

	case route.DonorDashboard, route.VolunteerDashboard:
		if !hasIdent {
			return errNoIdentity
		}
		history, err := s.donations.History(ctx, ident.UserID)
		if err != nil {
			return err
		}
		p.Donations = history

	case route.AdminDashboard:
		summary, err := s.donations.Summary(ctx)
		if err != nil {
			return err
		}
		p.Summary = summary
		p.Metrics = s.counters.Snapshot()
	}

	return nil
}
