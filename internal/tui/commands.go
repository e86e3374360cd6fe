package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/avelezt/lanes/internal/api"
	"github.com/avelezt/lanes/internal/models"
	"github.com/avelezt/lanes/internal/roster"
)

// opCtx returns a request context bounded by the configured timeout.
func (m Model) opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, m.Config.Timeout())
}

func (m Model) fetchProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		projects, err := m.Gateway.FetchProjects(ctx)
		if err != nil {
			return errMsg{err: err, fallback: "Could not load spaces"}
		}
		return projectsMsg{projects: projects}
	}
}

func (m Model) fetchProjectCmd(projectID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		project, err := m.Gateway.FetchProject(ctx, projectID)
		if err != nil {
			return errMsg{err: err, fallback: "Could not refresh space"}
		}
		return projectRefreshedMsg{project: project}
	}
}

func (m Model) fetchUsersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		users, err := m.Gateway.FetchUsers(ctx)
		if err != nil {
			return errMsg{err: err, fallback: "Could not load users"}
		}
		return usersMsg{users: users}
	}
}

// fetchColumnsCmd refetches the board. version guards adoption against
// out-of-order responses; pass 0 to adopt unconditionally.
func (m Model) fetchColumnsCmd(projectID string, version uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		columns, err := m.Gateway.FetchColumns(ctx, projectID)
		if err != nil {
			return errMsg{err: err, fallback: "Could not load the board"}
		}
		return columnsMsg{
			projectID: projectID,
			version:   version,
			columns:   columns,
		}
	}
}

// replaceCardsCmd persists a full replacement of one column's cards.
// snapshot is the pre-change board, restored on failure.
func (m Model) replaceCardsCmd(projectID, columnName string, cards []models.Card, version uint64, snapshot []models.Column) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		columns, message, err := m.Gateway.ReplaceColumnCards(ctx, projectID, columnName, cards)
		if err != nil {
			return boardErrMsg{
				err:       err,
				fallback:  "Could not save the new card order",
				projectID: projectID,
				snapshot:  snapshot,
			}
		}
		return columnsMsg{
			projectID: projectID,
			version:   version,
			columns:   columns,
			message:   message,
		}
	}
}

// crossMoveCmd persists a card move between two columns as two sequential
// replacement calls: first the source without the card, then the destination
// with it. The first call's success message is suppressed so the user sees a
// single confirmation. If the first call fails the board rolls back; if the
// second fails the board is refetched because the server has already saved
// the source half.
func (m Model) crossMoveCmd(projectID, srcName, dstName string, srcCards, dstCards []models.Card, version uint64, snapshot []models.Column) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()

		if _, _, err := m.Gateway.ReplaceColumnCards(ctx, projectID, srcName, srcCards); err != nil {
			return boardErrMsg{
				err:       err,
				fallback:  "Could not move the card",
				projectID: projectID,
				snapshot:  snapshot,
			}
		}

		columns, message, err := m.Gateway.ReplaceColumnCards(ctx, projectID, dstName, dstCards)
		if err != nil {
			return boardErrMsg{
				err:       err,
				fallback:  "Card move was only partially saved, reloading",
				projectID: projectID,
				refetch:   true,
			}
		}
		return columnsMsg{
			projectID: projectID,
			version:   version,
			columns:   columns,
			message:   message,
		}
	}
}

// setColumnOrderCmd persists a column reposition.
func (m Model) setColumnOrderCmd(projectID, columnName string, order int, version uint64, snapshot []models.Column) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		columns, message, err := m.Gateway.SetColumnOrder(ctx, projectID, columnName, order)
		if err != nil {
			return boardErrMsg{
				err:       err,
				fallback:  "Could not move the column",
				projectID: projectID,
				snapshot:  snapshot,
			}
		}
		return columnsMsg{
			projectID: projectID,
			version:   version,
			columns:   columns,
			message:   message,
		}
	}
}

func (m Model) createColumnCmd(projectID string, req api.CreateColumnRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		columns, message, err := m.Gateway.CreateColumn(ctx, projectID, req)
		if err != nil {
			return errMsg{err: err, fallback: "Could not create the column"}
		}
		return columnsMsg{projectID: projectID, columns: columns, message: message}
	}
}

func (m Model) renameColumnCmd(projectID, columnName, newName string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		columns, message, err := m.Gateway.RenameColumn(ctx, projectID, columnName, newName)
		if err != nil {
			return errMsg{err: err, fallback: "Could not rename the column"}
		}
		return columnsMsg{projectID: projectID, columns: columns, message: message}
	}
}

func (m Model) deleteColumnCmd(projectID, columnName, targetColumn string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		columns, message, err := m.Gateway.DeleteColumn(ctx, projectID, columnName, targetColumn)
		if err != nil {
			return errMsg{err: err, fallback: "Could not delete the column"}
		}
		return columnsMsg{projectID: projectID, columns: columns, message: message}
	}
}

func (m Model) createProjectCmd(req api.CreateProjectRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		project, message, err := m.Gateway.CreateProject(ctx, req)
		if err != nil {
			return errMsg{err: err, fallback: "Could not create the space"}
		}
		return projectCreatedMsg{project: project, message: message}
	}
}

// submitInvitesCmd sends the staged roster changes: at most one invite call
// and one revoke call. Counts from both calls are merged into one summary.
func (m Model) submitInvitesCmd(projectID string, plan *roster.Plan) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()

		merged := map[string]any{}
		var message string

		if len(plan.InviteEmails) > 0 {
			res, err := m.Gateway.InviteMembers(ctx, projectID, plan.InviteEmails)
			if err != nil {
				return inviteDoneMsg{err: err}
			}
			for k, v := range res.Results {
				merged[k] = v
			}
			message = res.Message
		}

		if len(plan.RevokeEmails) > 0 {
			res, err := m.Gateway.RevokeInvites(ctx, projectID, plan.RevokeEmails)
			if err != nil {
				// The invite half may have succeeded, report partial outcome
				return inviteDoneMsg{results: merged, message: message, err: err}
			}
			for k, v := range res.Results {
				merged[k] = v
			}
			if res.Message != "" {
				message = res.Message
			}
		}

		return inviteDoneMsg{results: merged, message: message}
	}
}

// Auth commands

func (m Model) checkUserCmd(email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		exists, err := m.Gateway.CheckUser(ctx, email)
		return userCheckedMsg{exists: exists, err: err}
	}
}

func (m Model) sendLoginOTPCmd(email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		message, err := m.Gateway.SendLoginOTP(ctx, email, "")
		return otpSentMsg{message: message, err: err}
	}
}

func (m Model) sendSignupOTPCmd(email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		message, err := m.Gateway.SendSignupOTP(ctx, email)
		return otpSentMsg{message: message, signup: true, err: err}
	}
}

func (m Model) verifyOTPCmd(email, otp string, signup bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		var creds *api.Credentials
		var err error
		if signup {
			creds, err = m.Gateway.VerifySignupOTP(ctx, email, otp)
		} else {
			creds, err = m.Gateway.VerifyLoginOTP(ctx, email, otp)
		}
		return loggedInMsg{creds: creds, err: err}
	}
}

func (m Model) updateProfileCmd(req api.ProfileRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		user, err := m.Gateway.UpdateProfile(ctx, req)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opCtx()
		defer cancel()
		err := m.Gateway.Logout(ctx)
		return loggedOutMsg{err: err}
	}
}
