// Copyright (c) 2026 Fittessness. All rights reserved.

package api

import (
	"net/http"

	"github.com/fittessness/fittessness/internal/platform/constants"
	"github.com/fittessness/fittessness/internal/platform/ctxutil"
	"github.com/fittessness/fittessness/internal/platform/respond"
)

// # Public Pages
//
// These endpoints replace the server-rendered landing views with JSON page
// documents. They never require a session, but the home page greets the
// member by name when one is present.

// pageHome handles GET /.
func pageHome(writer http.ResponseWriter, request *http.Request) {
	page := map[string]any{
		"page":    "home",
		"app":     constants.AppName,
		"version": constants.AppVersion,
	}

	if session := ctxutil.GetSession(request.Context()); session != nil {
		page["first_name"] = session.FirstName
	}

	respond.OK(writer, page)
}

// pageAbout handles GET /about.
func pageAbout(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		"page":        "about",
		"app":         constants.AppName,
		"description": "Track your workouts, calories, and progress over time.",
	})
}

// pageRegister handles GET /register. It documents the fields the
// registration form submits to POST /registered.
func pageRegister(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		"page":   "register",
		"submit": "/registered",
		"fields": []string{"username", "first", "last", "email", "password"},
	})
}

// pageLogin handles GET /login. It documents the fields the login form
// submits to POST /loggedin.
func pageLogin(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		"page":   "login",
		"submit": "/loggedin",
		"fields": []string{"username", "password"},
	})
}
