// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the server-side HTML pages.

Templates are embedded at build time and parsed once:

	views.Render(w, "week.html", views.WeekData{...})

Pages:

  - login.html: credential form with error/misconfiguration notice
  - empty.html: shown when no weeks exist, with a create-week form
  - week.html: the attendance grid with week navigation and toggle script
  - players.html: roster editor as a newline-separated textarea

Template funcs "games" (slot numbers 1..16) and "cell" (played-map key) come
from the models package.
*/
package views
