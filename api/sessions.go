package api

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/aktionsart"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/export"
	"github.com/carlosgonzalezvergara/vendler/ls"
	"github.com/carlosgonzalezvergara/vendler/sessionstore"
	"github.com/labstack/echo/v4"
	"net/http"
)

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func (s *Server) engine(lang aktionsart.Lang) (*aktionsart.Engine, error) {
	e, ok := s.aktionsart[lang]
	if !ok {
		return nil, badRequest(fmt.Errorf("no classifier for language '%s'", lang))
	}
	return e, nil
}

func (s *Server) view(rec *sessionstore.Record) (SessionView, error) {
	v := SessionView{Session: rec.ID, Kind: rec.Kind, Lang: rec.Lang, Parent: rec.Parent}
	switch rec.Kind {
	case sessionstore.KindAktionsart:
		e, err := s.engine(rec.Lang)
		if err != nil {
			return v, err
		}
		sess := rec.Aktionsart
		if v.Prompt, err = e.Prompt(sess); err != nil {
			return v, err
		}
		v.Node = sess.Node
		v.CanGoBack = len(sess.History) > 0
		status := aktionsart.StatusOf(sess)
		v.Status = &status
		if handoff, err := aktionsart.Result(sess); err == nil {
			v.Finished = true
			v.Handoff = &handoff
			v.Result = handoff.Label
		}
	case sessionstore.KindLS:
		sess := rec.LS
		var err error
		if v.Prompt, err = s.ls.Prompt(sess); err != nil {
			return v, err
		}
		v.Node = sess.Node
		v.CanGoBack = len(sess.History) > 0
		v.Info = s.ls.Info(sess)
		v.Finished = v.Prompt.Kind == dialog.KindResult || v.Prompt.Kind == dialog.KindError
		if structure, err := ls.Result(sess); err == nil {
			v.Result = structure.String()
			v.LaTeX = structure.LaTeX()
		}
	}
	return v, nil
}

func (s *Server) respond(c echo.Context, status int, rec *sessionstore.Record) error {
	v, err := s.view(rec)
	if err != nil {
		return err
	}
	return c.JSON(status, v)
}

func (s *Server) createSession(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	kind, err := sessionstore.ParseKind(req.Kind)
	if err != nil {
		return badRequest(err)
	}
	rec := &sessionstore.Record{Kind: kind}
	switch kind {
	case sessionstore.KindAktionsart:
		lang, err := aktionsart.ParseLang(req.Lang)
		if err != nil {
			return badRequest(err)
		}
		e, err := s.engine(lang)
		if err != nil {
			return err
		}
		rec.Lang = lang
		if rec.Aktionsart, err = e.Start(); err != nil {
			return err
		}
	case sessionstore.KindLS:
		rec.Lang = aktionsart.Spanish
		if rec.LS, err = s.ls.Start(); err != nil {
			return err
		}
	}
	if err := s.store.Create(c.Request().Context(), rec); err != nil {
		return err
	}
	requestLogger(c).Info().Str("session", rec.ID).Str("kind", string(kind)).Msg("Session created")
	return s.respond(c, http.StatusCreated, rec)
}

func (s *Server) getSession(c echo.Context) error {
	rec, err := s.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return s.respond(c, http.StatusOK, rec)
}

func (s *Server) deleteSession(c echo.Context) error {
	if err := s.store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// update runs one of the dialog operations on whichever engine owns the record.
func (s *Server) update(c echo.Context, onAktionsart func(*aktionsart.Engine, *aktionsart.Session) error, onLS func(*ls.Session) error) error {
	rec, err := s.store.Update(c.Request().Context(), c.Param("id"), func(rec *sessionstore.Record) error {
		switch rec.Kind {
		case sessionstore.KindAktionsart:
			e, err := s.engine(rec.Lang)
			if err != nil {
				return err
			}
			return onAktionsart(e, rec.Aktionsart)
		case sessionstore.KindLS:
			return onLS(rec.LS)
		}
		return ErrWrongKind
	})
	if err != nil {
		return err
	}
	return s.respond(c, http.StatusOK, rec)
}

func (s *Server) answer(c echo.Context) error {
	var in dialog.Input
	if err := c.Bind(&in); err != nil {
		return err
	}
	return s.update(c,
		func(e *aktionsart.Engine, sess *aktionsart.Session) error { return e.Answer(sess, in) },
		func(sess *ls.Session) error { return s.ls.Answer(sess, in) },
	)
}

func (s *Server) back(c echo.Context) error {
	return s.update(c,
		func(e *aktionsart.Engine, sess *aktionsart.Session) error { e.Back(sess); return nil },
		func(sess *ls.Session) error { s.ls.Back(sess); return nil },
	)
}

func (s *Server) restart(c echo.Context) error {
	return s.update(c,
		func(e *aktionsart.Engine, sess *aktionsart.Session) error { return e.Restart(sess) },
		func(sess *ls.Session) error { return s.ls.Restart(sess) },
	)
}

// handoff opens a logical structure session seeded with a finished
// classification.
func (s *Server) handoff(c echo.Context) error {
	ctx := c.Request().Context()
	parent, err := s.store.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	if parent.Kind != sessionstore.KindAktionsart {
		return ErrWrongKind
	}
	if parent.Lang != aktionsart.Spanish {
		return ErrSpanishOnly
	}
	result, err := aktionsart.Result(parent.Aktionsart)
	if err != nil {
		return err
	}
	sess, err := s.ls.Seed(result)
	if err != nil {
		return err
	}
	rec := &sessionstore.Record{Kind: sessionstore.KindLS, Lang: aktionsart.Spanish, Parent: parent.ID, LS: sess}
	if err := s.store.Create(ctx, rec); err != nil {
		return err
	}
	requestLogger(c).Info().Str("session", rec.ID).Str("parent", parent.ID).Str("akt", result.Label).Msg("Handed off")
	return s.respond(c, http.StatusCreated, rec)
}

func (s *Server) export(c echo.Context) error {
	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		return err
	}
	rec, err := s.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if rec.Kind != sessionstore.KindLS {
		return ErrWrongKind
	}
	structure, err := ls.Result(rec.LS)
	if err != nil {
		return err
	}
	file, err := export.Export(structure, format)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}

func (s *Server) getCredits(c echo.Context) error {
	lang, err := aktionsart.ParseLang(c.QueryParam("lang"))
	if err != nil {
		return badRequest(err)
	}
	credits, ok := s.credits[lang]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no credits for this language")
	}
	return c.JSON(http.StatusOK, credits)
}
