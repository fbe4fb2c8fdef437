package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hooksdemo/internal/diag"
	"hooksdemo/internal/state"
)

// User is the record shared through UserContext. The zero User means nobody
// is signed in.
type User struct {
	Name  string
	Email string
}

// SignedIn reports whether u is a real user rather than the absent value.
func (u User) SignedIn() bool {
	return u != User{}
}

// UserContext carries the signed-in user to every profile view under a provider.
var UserContext = state.NewContext("user", User{})

type profileKeys struct {
	Login  key.Binding
	Logout key.Binding
}

var defaultProfileKeys = profileKeys{
	Login:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "sign in")),
	Logout: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sign out")),
}

// UserProfileView demonstrates a value shared through a provider scope. It
// never holds the user itself; it reads the nearest provider on every render.
type UserProfileView struct {
	scope   *state.Scope
	login   User
	emitter diag.Emitter
	keys    profileKeys
	cache   *renderCache
	life    state.Lifecycle
	mounted bool
}

var _ Widget = (*UserProfileView)(nil)

// NewUserProfileView creates an unmounted profile consuming UserContext from
// scope. login is the record set by Login.
func NewUserProfileView(scope *state.Scope, login User, emitter diag.Emitter) *UserProfileView {
	if emitter == nil {
		emitter = diag.Discard
	}
	v := &UserProfileView{
		scope:   scope,
		login:   login,
		emitter: emitter,
		keys:    defaultProfileKeys,
	}
	v.cache = newRenderCache(func() string {
		return renderUserProfile(v.User(), v.keys)
	})
	return v
}

// Mount subscribes to the nearest provider of UserContext.
func (v *UserProfileView) Mount() {
	if v.mounted || v.life.Disposed() {
		return
	}
	v.mounted = true
	v.life.OnDispose(UserContext.Subscribe(v.scope, v.cache))
}

// Unmount drops the subscription. The provider outlives the view.
func (v *UserProfileView) Unmount() {
	v.mounted = false
	v.life.Dispose()
}

// Mounted reports whether the view is mounted.
func (v *UserProfileView) Mounted() bool { return v.mounted }

// User returns the value of the nearest provider, or the absent user.
func (v *UserProfileView) User() User {
	return UserContext.Use(v.scope)
}

// Login publishes the configured user to the provider. Without a provider
// nothing happens, matching a context read with no enclosing provider.
func (v *UserProfileView) Login() {
	p, ok := UserContext.Lookup(v.scope)
	if !ok || !v.mounted {
		return
	}
	p.Set(v.login)
	v.emitter.Emit(diag.Event{
		Kind:       diag.KindLogin,
		Widget:     PanelProfile,
		Message:    v.login.Name + " signed in",
		Attributes: map[string]string{"email": v.login.Email},
	})
}

// RequestLogout asks the page to confirm before signing out.
func (v *UserProfileView) RequestLogout() tea.Cmd {
	if !v.User().SignedIn() {
		return nil
	}
	name := v.User().Name
	return func() tea.Msg { return ShowLogoutConfirmMsg{Name: name} }
}

// Logout resets the provider to the absent user.
func (v *UserProfileView) Logout() {
	p, ok := UserContext.Lookup(v.scope)
	if !ok || !v.mounted || !v.User().SignedIn() {
		return
	}
	name := p.Value().Name
	p.Set(User{})
	v.emitter.Emit(diag.Event{Kind: diag.KindLogout, Widget: PanelProfile, Message: name + " signed out"})
}

// Title implements Widget.
func (v *UserProfileView) Title() string { return "useContext · Profile" }

// Bindings implements Widget.
func (v *UserProfileView) Bindings() []key.Binding {
	if v.User().SignedIn() {
		return []key.Binding{v.keys.Logout}
	}
	return []key.Binding{v.keys.Login}
}

// Renders implements Widget.
func (v *UserProfileView) Renders() int { return v.cache.Renders() }

// Init implements View.
func (v *UserProfileView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *UserProfileView) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !v.mounted {
		return v, nil
	}
	switch {
	case key.Matches(keyMsg, v.keys.Login):
		v.Login()
	case key.Matches(keyMsg, v.keys.Logout):
		return v, v.RequestLogout()
	}
	return v, nil
}

// View implements View.
func (v *UserProfileView) View() string {
	return v.cache.View()
}

func renderUserProfile(u User, keys profileKeys) string {
	if !u.SignedIn() {
		return lipgloss.JoinVertical(lipgloss.Left,
			Styles.Empty.Render("Not signed in"),
			"",
			button(keys.Login.Help().Key, "Sign in", ColorGreen, false),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		"Name: "+u.Name,
		"Email: "+u.Email,
		"",
		button(keys.Logout.Help().Key, "Sign out", ColorDanger, false),
	)
}
