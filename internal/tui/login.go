package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/avelezt/lanes/internal/api"
	"github.com/avelezt/lanes/internal/tui/huhforms"
	"github.com/avelezt/lanes/internal/tui/state"
)

// updateLogin drives the email + one-time-code login flow. It receives both
// the key/form messages while LoginMode is active and the auth result
// messages coming back from the gateway.
func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.FormState

	switch msg := msg.(type) {
	case userCheckedMsg:
		if msg.err != nil {
			m.NotificationState.Add(state.LevelError, api.ErrorMessage(msg.err, "Could not reach the server"))
			return m.restartLogin()
		}
		if msg.exists {
			fs.IsSignup = false
			return m, m.sendLoginOTPCmd(fs.Email)
		}
		fs.IsSignup = true
		return m, m.sendSignupOTPCmd(fs.Email)

	case otpSentMsg:
		if msg.err != nil {
			m.NotificationState.Add(state.LevelError, api.ErrorMessage(msg.err, "Could not send the code"))
			return m.restartLogin()
		}
		fs.IsSignup = msg.signup
		if msg.message != "" {
			m.NotificationState.Add(state.LevelInfo, msg.message)
		}
		fs.LoginStage = state.StageOTP
		fs.OTP = ""
		fs.LoginForm = huhforms.CreateOTPForm(fs.Email, &fs.OTP)
		return m, fs.LoginForm.Init()

	case loggedInMsg:
		if msg.err != nil {
			m.NotificationState.Add(state.LevelError, api.ErrorMessage(msg.err, "That code didn't work"))
			fs.LoginStage = state.StageOTP
			fs.OTP = ""
			fs.LoginForm = huhforms.CreateOTPForm(fs.Email, &fs.OTP)
			return m, fs.LoginForm.Init()
		}
		if err := m.Session.SetCredentials(msg.creds.Token, msg.creds.User); err != nil {
			m.NotificationState.Add(state.LevelError, "Logged in, but the session could not be saved")
		}
		user := msg.creds.User
		m.AppState.SetCurrentUser(&user)
		if fs.IsSignup {
			fs.LoginStage = state.StageSignup
			fs.LoginForm = huhforms.CreateSignupForm(&fs.FirstName, &fs.LastName)
			return m, fs.LoginForm.Init()
		}
		return m.finishLogin()

	case profileSavedMsg:
		if msg.err != nil {
			m.NotificationState.Add(state.LevelError, api.ErrorMessage(msg.err, "Could not save your profile"))
			fs.LoginStage = state.StageSignup
			fs.LoginForm = huhforms.CreateSignupForm(&fs.FirstName, &fs.LastName)
			return m, fs.LoginForm.Init()
		}
		if msg.user != nil {
			if err := m.Session.SetUser(*msg.user); err == nil {
				m.AppState.SetCurrentUser(msg.user)
			}
		}
		return m.finishLogin()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Back out of the OTP or signup stage to the email prompt
			if fs.LoginStage == state.StageOTP || fs.LoginStage == state.StageSignup {
				return m.restartLogin()
			}
			return m, tea.Quit
		}
	}

	if fs.LoginForm == nil || fs.LoginStage == state.StageBusy {
		return m, nil
	}

	form, cmd := fs.LoginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		fs.LoginForm = f
	}

	if fs.LoginForm.State != huh.StateCompleted {
		return m, cmd
	}

	switch fs.LoginStage {
	case state.StageEmail:
		fs.Email = strings.TrimSpace(strings.ToLower(fs.Email))
		fs.LoginStage = state.StageBusy
		return m, m.checkUserCmd(fs.Email)

	case state.StageOTP:
		otp := strings.TrimSpace(fs.OTP)
		fs.LoginStage = state.StageBusy
		return m, m.verifyOTPCmd(fs.Email, otp, fs.IsSignup)

	case state.StageSignup:
		first := strings.TrimSpace(fs.FirstName)
		last := strings.TrimSpace(fs.LastName)
		fs.LoginStage = state.StageBusy
		return m, m.updateProfileCmd(api.ProfileRequest{
			FirstName: first,
			LastName:  last,
			FullName:  strings.TrimSpace(first + " " + last),
		})
	}

	return m, cmd
}

// restartLogin returns to a fresh email prompt.
func (m Model) restartLogin() (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.LoginStage = state.StageEmail
	fs.OTP = ""
	fs.IsSignup = false
	fs.LoginForm = huhforms.CreateEmailForm(&fs.Email)
	return m, fs.LoginForm.Init()
}

// finishLogin leaves the login flow and loads the workspace.
func (m Model) finishLogin() (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.LoginForm = nil
	fs.OTP = ""
	m.UiState.SetMode(state.NormalMode)
	return m, tea.Batch(m.fetchProjectsCmd(), m.fetchUsersCmd())
}
