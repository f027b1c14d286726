package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/application/usecase/movement"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/infra/db/dbtest"
	"github.com/finanzas-pareja/ledger/internal/integration/persistence"
)

var today = time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return today }

type fixture struct {
	user         *entity.User
	userRepo     adapter.UserRepository
	movementRepo adapter.MovementRepository
	record       *movement.RecordMovementUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)

	userRepo := persistence.NewUserRepository(db)
	user := entity.NewUser("ana@example.com", "Ana", "hash")
	require.NoError(t, userRepo.Create(context.Background(), user))

	movementRepo := persistence.NewMovementRepository(db)
	return &fixture{
		user:         user,
		userRepo:     userRepo,
		movementRepo: movementRepo,
		record:       movement.NewRecordMovementUseCase(movementRepo),
	}
}

func (f *fixture) template(t *testing.T, scheduled time.Time, end *time.Time) *entity.Movement {
	t.Helper()
	out, err := f.record.Execute(context.Background(), movement.RecordMovementInput{
		UserID:       f.user.ID,
		Date:         scheduled,
		CategoryName: "Arriendo",
		Amount:       decimal.NewFromInt(800),
		Type:         "expense",
		Description:  "Arriendo depto",
		Recurrence: &entity.Recurrence{
			Frequency:     entity.FrequencyMonthly,
			ScheduledDate: scheduled,
			EndDate:       end,
		},
	})
	require.NoError(t, err)
	return out.Movement.Movement
}

func dayOf(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestListPendingExcludesExpired(t *testing.T) {
	f := newFixture(t)
	expired := dayOf(2024, 3, 31)
	f.template(t, dayOf(2024, 3, 1), &expired)
	due := f.template(t, dayOf(2024, 4, 1), nil)
	future := f.template(t, dayOf(2024, 5, 1), nil)

	out, err := NewListPendingUseCase(f.movementRepo).WithClock(clock).Execute(context.Background(), ListPendingInput{UserID: f.user.ID})
	require.NoError(t, err)
	require.Len(t, out.Movements, 2)
	assert.Equal(t, due.ID, out.Movements[0].Movement.ID)
	assert.Equal(t, future.ID, out.Movements[1].Movement.ID)
}

func TestApproveCreatesOccurrenceDatedToday(t *testing.T) {
	f := newFixture(t)
	template := f.template(t, dayOf(2024, 4, 1), nil)
	approve := NewApproveRecurringUseCase(f.movementRepo).WithClock(clock)
	input := ApproveRecurringInput{MovementID: template.ID, UserID: f.user.ID}

	out, err := approve.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, out.Movement.IsRecurring)
	assert.True(t, dayOf(2024, 4, 2).Equal(out.Movement.Date))
	assert.True(t, out.Movement.Amount.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, template.CategoryID, out.Movement.CategoryID)

	_, err = approve.Execute(context.Background(), input)
	var movementErr *domainerror.MovementError
	require.ErrorAs(t, err, &movementErr)
	assert.Equal(t, domainerror.ErrCodeRecurringNotPending, movementErr.Code)
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))

	pending, err := NewListPendingUseCase(f.movementRepo).WithClock(clock).Execute(context.Background(), ListPendingInput{UserID: f.user.ID})
	require.NoError(t, err)
	assert.Empty(t, pending.Movements)
}

func TestApproveUnknownOrForeign(t *testing.T) {
	f := newFixture(t)
	template := f.template(t, dayOf(2024, 4, 1), nil)
	approve := NewApproveRecurringUseCase(f.movementRepo)

	_, err := approve.Execute(context.Background(), ApproveRecurringInput{MovementID: uuid.New(), UserID: f.user.ID})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))

	_, err = approve.Execute(context.Background(), ApproveRecurringInput{MovementID: template.ID, UserID: uuid.New()})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
}

func TestRejectPolicies(t *testing.T) {
	for _, policy := range []RejectPolicy{RejectPolicySoft, RejectPolicyHard} {
		t.Run(string(policy), func(t *testing.T) {
			f := newFixture(t)
			template := f.template(t, dayOf(2024, 4, 1), nil)
			reject := NewRejectRecurringUseCase(f.movementRepo, policy)
			input := RejectRecurringInput{MovementID: template.ID, UserID: f.user.ID}

			require.NoError(t, reject.Execute(context.Background(), input))

			stored, err := f.movementRepo.FindByID(context.Background(), template.ID, f.user.ID)
			if policy == RejectPolicyHard {
				assert.ErrorIs(t, err, domainerror.ErrMovementNotFound)
			} else {
				require.NoError(t, err)
				assert.Equal(t, entity.RecurringStatusRejected, *stored.Status)
			}

			err = reject.Execute(context.Background(), input)
			assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))

			_, err = NewApproveRecurringUseCase(f.movementRepo).Execute(context.Background(), ApproveRecurringInput{MovementID: template.ID, UserID: f.user.ID})
			assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
		})
	}
}

func TestParseRejectPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    RejectPolicy
		wantErr bool
	}{
		{"", RejectPolicySoft, false},
		{"soft", RejectPolicySoft, false},
		{" HARD ", RejectPolicyHard, false},
		{"archive", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRejectPolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

type recordingEmailService struct {
	inputs []adapter.QueueRecurringReminderInput
	err    error
}

func (s *recordingEmailService) QueueRecurringReminder(_ context.Context, input adapter.QueueRecurringReminderInput) error {
	if s.err != nil {
		return s.err
	}
	s.inputs = append(s.inputs, input)
	return nil
}

func TestQueueRemindersListsDueTemplates(t *testing.T) {
	f := newFixture(t)
	f.template(t, dayOf(2024, 4, 1), nil)
	f.template(t, dayOf(2024, 5, 1), nil)

	optedOut := entity.NewUser("leo@example.com", "Leo", "hash")
	optedOut.RecurringReminders = false
	require.NoError(t, f.userRepo.Create(context.Background(), optedOut))

	emails := &recordingEmailService{}
	queue := NewQueueRemindersUseCase(f.userRepo, f.movementRepo, emails, "http://localhost:5173/").WithClock(clock)

	out, err := queue.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.UsersNotified)
	assert.Equal(t, 1, out.ItemsListed)

	require.Len(t, emails.inputs, 1)
	sent := emails.inputs[0]
	assert.Equal(t, "ana@example.com", sent.UserEmail)
	assert.Equal(t, "http://localhost:5173/recurring/pending", sent.PendingURL)
	require.Len(t, sent.Items, 1)
	assert.Equal(t, "800.00", sent.Items[0].Amount)
	assert.Equal(t, "Arriendo", sent.Items[0].CategoryName)
	assert.Equal(t, "monthly", sent.Items[0].Frequency)

	// Reminders never approve anything.
	pending, err := NewListPendingUseCase(f.movementRepo).WithClock(clock).Execute(context.Background(), ListPendingInput{UserID: f.user.ID})
	require.NoError(t, err)
	assert.Len(t, pending.Movements, 2)
}

func TestQueueRemindersContinuesAfterFailure(t *testing.T) {
	f := newFixture(t)
	f.template(t, dayOf(2024, 4, 1), nil)

	emails := &recordingEmailService{err: errors.New("queue down")}
	out, err := NewQueueRemindersUseCase(f.userRepo, f.movementRepo, emails, "").WithClock(clock).Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.UsersNotified)
}

func TestQueueRemindersListsEachTemplateOnce(t *testing.T) {
	f := newFixture(t)
	first := f.template(t, dayOf(2024, 4, 1), nil)

	emails := &recordingEmailService{}
	now := today
	queue := NewQueueRemindersUseCase(f.userRepo, f.movementRepo, emails, "").WithClock(func() time.Time { return now })

	out, err := queue.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.ItemsListed)

	// A second tick the same day, or a restart, finds nothing new.
	out, err = queue.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.UsersNotified)
	assert.Len(t, emails.inputs, 1)

	stored, err := f.movementRepo.FindByID(context.Background(), first.ID, f.user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RemindedOn)
	assert.True(t, dayOf(2024, 4, 2).Equal(*stored.RemindedOn), "got %s", stored.RemindedOn)

	// A template that becomes due later gets its own reminder, without the old one.
	f.template(t, dayOf(2024, 4, 5), nil)
	now = dayOf(2024, 4, 5)

	out, err = queue.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.ItemsListed)
	require.Len(t, emails.inputs, 2)
	require.Len(t, emails.inputs[1].Items, 1)
	assert.True(t, dayOf(2024, 4, 5).Equal(emails.inputs[1].Items[0].ScheduledDate))
}

func TestQueueRemindersRetriesAfterFailure(t *testing.T) {
	f := newFixture(t)
	f.template(t, dayOf(2024, 4, 1), nil)

	emails := &recordingEmailService{err: errors.New("queue down")}
	queue := NewQueueRemindersUseCase(f.userRepo, f.movementRepo, emails, "").WithClock(clock)

	_, err := queue.Execute(context.Background())
	require.NoError(t, err)

	emails.err = nil
	out, err := queue.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.ItemsListed)
}
