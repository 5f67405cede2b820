package app

import (
	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/registry"
	applog "github.com/PasqualeAiello/io-app/utils/log"
	helpview "github.com/PasqualeAiello/io-app/views/help"
	loadingview "github.com/PasqualeAiello/io-app/views/loading"
	outcomeview "github.com/PasqualeAiello/io-app/views/outcome"
	"github.com/PasqualeAiello/io-app/views/view"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/PasqualeAiello/io-app/commands" // triggers autoload
)

// Version is set at build time.
var Version = "dev"

func l() *applog.AppLogger {
	return applog.L().With("component", "app")
}

func (m *Model) registerView(name string, factory view.Factory) {
	m.views[name] = factory
}

// registerViews wires every screen the model can navigate to.
func (m *Model) registerViews() {
	m.registerView(view.NameHome, func(w, h int, payload any) (view.View, tea.Cmd) {
		return m.home, nil
	})
	m.registerView(helpview.ViewName, func(w, h int, payload any) (view.View, tea.Cmd) {
		return helpview.New(w, h, commandInfos()), nil
	})
	m.registerView(loadingview.ViewName, func(w, h int, payload any) (view.View, tea.Cmd) {
		v := loadingview.New(w, h, m.tr)
		return v, v.Init()
	})
	for _, route := range activation.Routes {
		if activation.IsLoading(route) {
			continue
		}
		route := route
		m.registerView(string(route), func(w, h int, payload any) (view.View, tea.Cmd) {
			bonus, _ := payload.(*activation.Bonus)
			if bonus == nil {
				bonus = m.store.Snapshot().Result.Bonus
			}
			return outcomeview.New(route, w, h, m.tr, bonus), nil
		})
	}
}

func commandInfos() []helpview.CommandInfo {
	var out []helpview.CommandInfo
	for _, c := range registry.All() {
		out = append(out, helpview.CommandInfo{Name: c.Name(), Description: c.Description()})
	}
	return out
}

// isActivationScreen reports whether name is one of the screens an
// activation attempt navigates through.
func isActivationScreen(name string) bool {
	for _, r := range activation.Routes {
		if string(r) == name {
			return true
		}
	}
	return false
}
