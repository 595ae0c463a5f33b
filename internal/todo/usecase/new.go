package usecase

import (
	"vif/internal/resolver"
	"vif/internal/todo"
	"vif/internal/todo/store"
	"vif/pkg/elevenlabs"
	"vif/pkg/gcalendar"
	pkgLog "vif/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	resolver resolver.Resolver
	store    *store.Store
	speech   elevenlabs.IElevenLabs // nil disables transcription
	calendar gcalendar.ICalendar    // nil disables calendar mirroring
	timezone string
}

var _ todo.UseCase = (*implUseCase)(nil)

// New creates a new todo UseCase instance.
func New(
	l pkgLog.Logger,
	res resolver.Resolver,
	st *store.Store,
	speech elevenlabs.IElevenLabs,
	calendar gcalendar.ICalendar,
	timezone string,
) *implUseCase {
	if timezone == "" {
		timezone = "UTC"
	}
	return &implUseCase{
		l:        l,
		resolver: res,
		store:    st,
		speech:   speech,
		calendar: calendar,
		timezone: timezone,
	}
}
