// Package dashboard serves the interactive sunspot page.
//
// A Dashboard answers three panel requests over one loaded series:
//
//	dash := dashboard.New(series, logger)
//
//	// filter by year, then smooth the monthly count
//	view, err := dash.Smoothed(dashboard.SmoothingParams{MinYear: 1950, MaxYear: 2020, Window: 10})
//
//	// fold every row onto an 11-year cycle
//	overlay, err := dash.Overlay(dashboard.CycleParams{CycleLength: 11})
//
//	// live image for a SOHO/SDO feed
//	url, err := dash.TelescopeURL("LASCO C2")
//
// Parameters outside the page controls return a *ValidationError. Errors from
// the transforms are returned unchanged, so a *transform.DivisionError can be
// shown in place of the chart.
//
// # Server
//
// Server mounts the page, PNG charts, a JSON api, datastar SSE endpoints and
// prometheus metrics on a chi router:
//
//	srv := dashboard.NewServer(dashboard.ServerConfig{Dashboard: dash, Port: 8050, Logger: logger})
//	err := srv.Serve(ctx)
package dashboard
