package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"donorlink-web/internal/auth"
	"donorlink-web/internal/cart"
	"donorlink-web/internal/donation"
	"donorlink-web/internal/logger"
	"donorlink-web/internal/route"
	"donorlink-web/internal/session"
	"donorlink-web/internal/user"

	"go.uber.org/zap"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromCtx(ctx)
	st := auth.StateFrom(ctx)

	if err := r.ParseForm(); err != nil {
		s.renderRoute(w, r, st, route.Login, nil, http.StatusBadRequest, "Invalid form submission")
		return
	}

	token, u, err := s.users.Login(ctx, r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			s.renderRoute(w, r, st, route.Login, nil, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Error("login failed", zap.Error(err))
		s.renderError(w, r, st, http.StatusInternalServerError)
		return
	}

	st, err = gateFrom(ctx).Login(ctx, u.StoredUser())
	if err != nil {
		s.renderError(w, r, st, http.StatusInternalServerError)
		return
	}

	auth.SetAccessToken(w, token, int(user.TokenTTL.Seconds()), s.secureCookies)
	http.Redirect(w, r, route.Landing(st), http.StatusSeeOther)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st := auth.StateFrom(ctx)

	if err := r.ParseForm(); err != nil {
		s.renderRoute(w, r, st, route.Signup, nil, http.StatusBadRequest, "Invalid form submission")
		return
	}

	role, err := session.ParseRole(r.PostFormValue("role"))
	if err != nil {
		s.renderRoute(w, r, st, route.Signup, nil, http.StatusBadRequest, "Please choose Donor, Volunteer or Admin")
		return
	}

	_, err = s.users.Register(ctx, user.RegisterParams{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Role:     role,
	})
	switch {
	case err == nil:
		http.Redirect(w, r, route.Path(route.Login), http.StatusSeeOther)
	case errors.Is(err, user.ErrEmailExists):
		s.renderRoute(w, r, st, route.Signup, nil, http.StatusConflict, "Email already registered")
	case errors.Is(err, user.ErrMissingFields),
		errors.Is(err, user.ErrWeakPassword),
		errors.Is(err, user.ErrPasswordTooLong),
		errors.Is(err, user.ErrNameTooLong),
		errors.Is(err, user.ErrEmailTooLong),
		errors.Is(err, session.ErrInvalidRole):
		s.renderRoute(w, r, st, route.Signup, nil, http.StatusBadRequest, capitalize(err.Error()))
	default:
		logger.FromCtx(ctx).Error("signup failed", zap.Error(err))
		s.renderError(w, r, st, http.StatusInternalServerError)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	st, err := gateFrom(ctx).Logout(ctx)
	if err != nil {
		s.renderError(w, r, auth.StateFrom(ctx), http.StatusInternalServerError)
		return
	}

	auth.ClearAccessToken(w, s.secureCookies)
	http.Redirect(w, r, route.Landing(st), http.StatusSeeOther)
}

// authorize admits a form post only when the session may open page id and
// the request carries the caller's access token. Otherwise it writes the
// response itself.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request, id route.ID) (auth.Identity, bool) {
	ctx := r.Context()
	st := auth.StateFrom(ctx)

	if !st.IsLoggedIn() {
		http.Redirect(w, r, route.Path(route.Login), http.StatusSeeOther)
		return auth.Identity{}, false
	}
	if !route.AllowedRoutes(st).Has(id) {
		s.renderError(w, r, st, http.StatusNotFound)
		return auth.Identity{}, false
	}

	ident, ok := auth.IdentityFrom(ctx)
	if !ok {
		http.Redirect(w, r, route.Path(route.Login), http.StatusSeeOther)
		return auth.Identity{}, false
	}
	if err := r.ParseForm(); err != nil {
		s.renderRoute(w, r, st, id, nil, http.StatusBadRequest, "Invalid form submission")
		return auth.Identity{}, false
	}
	return ident, true
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	ident, ok := s.authorize(w, r, route.Cart)
	if !ok {
		return
	}
	ctx := r.Context()
	st := auth.StateFrom(ctx)

	qty, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		qty = 0
	}

	_, err = s.carts.AddToCart(ctx, cart.AddToCartParams{
		UserID:    ident.UserID,
		ProductID: r.PostFormValue("product_id"),
		Quantity:  qty,
	})
	switch {
	case err == nil:
		http.Redirect(w, r, route.Path(route.Cart), http.StatusSeeOther)
	case errors.Is(err, cart.ErrProductNotFound):
		s.renderError(w, r, st, http.StatusNotFound)
	case errors.Is(err, cart.ErrInvalidQuantity), errors.Is(err, cart.ErrInsufficientStock):
		s.renderRoute(w, r, st, route.Cart, nil, http.StatusBadRequest, capitalize(err.Error()))
	default:
		logger.FromCtx(ctx).Error("add to cart failed", zap.Error(err))
		s.renderError(w, r, st, http.StatusInternalServerError)
	}
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ident, ok := s.authorize(w, r, route.Cart)
	if !ok {
		return
	}
	ctx := r.Context()
	st := auth.StateFrom(ctx)

	err := s.carts.RemoveFromCart(ctx, cart.DeleteFromCartParams{
		UserID: ident.UserID,
		ItemID: r.PostFormValue("item_id"),
	})
	switch {
	case err == nil, errors.Is(err, cart.ErrCartItemNotFound):
		http.Redirect(w, r, route.Path(route.Cart), http.StatusSeeOther)
	case errors.Is(err, cart.ErrInvalidRemoveCartInput):
		s.renderRoute(w, r, st, route.Cart, nil, http.StatusBadRequest, capitalize(err.Error()))
	default:
		logger.FromCtx(ctx).Error("remove from cart failed", zap.Error(err))
		s.renderError(w, r, st, http.StatusInternalServerError)
	}
}

func (s *Server) handleDonate(w http.ResponseWriter, r *http.Request) {
	ident, ok := s.authorize(w, r, route.Donate)
	if !ok {
		return
	}
	ctx := r.Context()
	st := auth.StateFrom(ctx)

	params := donation.CreateDonationParams{
		UserID:   ident.UserID,
		Message:  r.PostFormValue("message"),
		FromCart: r.PostFormValue("from_cart") == "on",
	}
	if !params.FromCart {
		amount, err := strconv.ParseFloat(strings.TrimSpace(r.PostFormValue("amount")), 64)
		if err != nil {
			s.renderRoute(w, r, st, route.Donate, nil, http.StatusBadRequest, "Please enter an amount")
			return
		}
		params.Amount = amount
	}

	_, err := s.donations.Donate(ctx, params)
	switch {
	case err == nil:
		http.Redirect(w, r, route.Landing(st), http.StatusSeeOther)
	case errors.Is(err, donation.ErrInvalidAmount), errors.Is(err, donation.ErrMessageTooLong), errors.Is(err, donation.ErrEmptyCart):
		s.renderRoute(w, r, st, route.Donate, nil, http.StatusBadRequest, capitalize(err.Error()))
	default:
		logger.FromCtx(ctx).Error("donation failed", zap.Error(err))
		s.renderError(w, r, st, http.StatusInternalServerError)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
