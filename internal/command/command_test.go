package command_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/catalog"
	"github.com/Tiliavir/dietbook/internal/command"
	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/model"
)

// recorder is a ui.Sink that keeps everything printed.
type recorder struct {
	out  []string
	errs []string
}

func (r *recorder) Print(msg string)      { r.out = append(r.out, msg) }
func (r *recorder) PrintError(msg string) { r.errs = append(r.errs, msg) }

func (r *recorder) last() string {
	if len(r.out) == 0 {
		return ""
	}
	return r.out[len(r.out)-1]
}

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local)

func newManagerIn(dir string) *manager.Manager {
	return manager.NewFromPaths(filepath.Join(dir, "FoodList.txt"), filepath.Join(dir, "UserInfo.txt"),
		filepath.Join(dir, "FoodData.txt"), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newManager(t *testing.T) *manager.Manager {
	t.Helper()
	m := newManagerIn(t.TempDir())
	m.Now = func() time.Time { return now }
	return m
}

// run parses and executes line, failing the test on any error.
func run(t *testing.T, m *manager.Manager, rec *recorder, line string) {
	t.Helper()
	cmd, err := command.Parse(line)
	require.NoError(t, err, line)
	require.NoError(t, cmd.Execute(m, rec), line)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"unknown word", "eat apple"},
		{"unbalanced quote", `add "Fried rice -k 200`},
		{"add without name", "add -k 50"},
		{"add bad calorie", "add Apple -k lots"},
		{"add negative calorie", "add Apple -k -5"},
		{"add zero portion", "add Apple -k 50 -x 0"},
		{"add bad portion", "add Apple -k 50 -x two"},
		{"add bad date", "add Apple -k 50 -d yesterday"},
		{"add unknown flag", "add Apple --sugar 5"},
		{"add store with own macros", "add Apple -k 50 --store drinks"},
		{"delete without index", "delete"},
		{"delete word", "delete first"},
		{"delete two indexes", "delete 1 2"},
		{"list too many args", "list a b c"},
		{"calculate nothing", "calculate"},
		{"calculate unknown", "calculate sugar"},
		{"name without value", "name"},
		{"info with argument", "info me"},
		{"editinfo nothing", "editinfo"},
		{"editinfo bad level", "editinfo -l 6"},
		{"editinfo negative age", "editinfo -a -3"},
		{"editinfo empty name", `editinfo -n ""`},
		{"exit with argument", "exit now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := command.Parse(tt.line)
			assert.Error(t, err)
		})
	}
}

func TestParseErrorClasses(t *testing.T) {
	_, err := command.Parse("add Apple -k 50 -x 0")
	assert.ErrorIs(t, err, apperror.ErrInvalidEntry)

	_, err = command.Parse("add Apple -k -5")
	assert.ErrorIs(t, err, apperror.ErrInvalidEntry)

	_, err = command.Parse("fly away")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Contains(t, err.Error(), `unknown command "fly"`)

	_, err = command.Parse("add Apple -k lots")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Contains(t, err.Error(), `"lots" is not a number`)
}

func TestAddAndList(t *testing.T) {
	m, rec := newManager(t), &recorder{}

	run(t, m, rec, "add Fried rice -k 200 -c 45 -p 4 -f 0.4 -x 2 -d 2026-10-19T08:15")
	run(t, m, rec, `add "Green apple" --calorie 50`)
	require.Equal(t, 2, m.Foods.Size())

	first, _ := m.Foods.Get(1)
	assert.Equal(t, "Fried rice", first.Food().Name())
	assert.Equal(t, 2, first.PortionSize())
	assert.Equal(t, "0.4", first.Food().Fat().String())

	second, _ := m.Foods.Get(2)
	assert.Equal(t, "Green apple", second.Food().Name())
	assert.Equal(t, now, second.(model.DatedEntry).DateTime())
	assert.Equal(t, 1, second.PortionSize())

	run(t, m, rec, "list")
	assert.Contains(t, rec.last(), "  1. 2 x Fried rice")
	assert.Contains(t, rec.last(), "  2. 1 x Green apple")
}

func TestAddFromCatalog(t *testing.T) {
	m, rec := newManager(t), &recorder{}
	m.Catalog = catalog.Default()

	run(t, m, rec, "add chicken rice -x 2")
	entry, err := m.Foods.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Chicken rice", entry.Food().Name())
	assert.Equal(t, "607", entry.Food().Calorie().String())
	assert.Equal(t, 2, entry.PortionSize())

	run(t, m, rec, "add kopi --store drinks")
	assert.Equal(t, 2, m.Foods.Size())

	run(t, m, rec, "calculate calorie")
	assert.Equal(t, "Total calorie intake for all entries: 1314 kcal", rec.last())

	rice, err := m.Catalog.Find("Chicken rice", "")
	require.NoError(t, err)
	assert.Equal(t, "607", rice.Calorie().String(), "logging a portion must not change the database")
}

func TestAddFromCatalogUnknown(t *testing.T) {
	m := newManager(t)

	for _, line := range []string{"add durian", `add kopi --store "Fruit Stall"`, "add apple --store bakery"} {
		cmd, err := command.Parse(line)
		require.NoError(t, err, line)
		assert.ErrorIs(t, cmd.Execute(m, &recorder{}), apperror.ErrUnknownFood, line)
	}
	assert.Equal(t, 0, m.Foods.Size())
}

func TestFoods(t *testing.T) {
	m, rec := newManager(t), &recorder{}

	run(t, m, rec, "foods")
	assert.Contains(t, rec.last(), "Drinks:")
	assert.Contains(t, rec.last(), "Fruit Stall:")

	run(t, m, rec, "foods fruit stall")
	assert.Contains(t, rec.last(), "Banana")
	assert.NotContains(t, rec.last(), "Kopi")

	cmd, err := command.Parse("database Bakery")
	require.NoError(t, err)
	assert.ErrorIs(t, cmd.Execute(m, rec), apperror.ErrUnknownFood)
}

func TestListEmpty(t *testing.T) {
	m, rec := newManager(t), &recorder{}
	run(t, m, rec, "list")
	assert.Equal(t, "Your food list is empty.", rec.last())
}

func TestListPeriodSortsByDate(t *testing.T) {
	m, rec := newManager(t), &recorder{}
	run(t, m, rec, "add Dinner -k 700 -d 2026-10-19T19:00")
	run(t, m, rec, "add Old -k 100 -d 2026-10-10T09:00")
	run(t, m, rec, "add Breakfast -k 300 -d 2026-10-19T07:30")

	run(t, m, rec, "list today")
	out := rec.last()
	assert.NotContains(t, out, "Old")
	assert.Less(t, strings.Index(out, "Breakfast"), strings.Index(out, "Dinner"))
	assert.Contains(t, out, "  1. 1 x Breakfast")
	assert.Contains(t, out, "@ 2026-10-19 07:30")

	run(t, m, rec, "list 2026-10-01T00:00 2026-10-15T00:00")
	assert.Contains(t, rec.last(), "  1. 1 x Old")
	assert.NotContains(t, rec.last(), "Dinner")

	run(t, m, rec, "list 2026-10-20T00:00")
	assert.Equal(t, "No entries found for since 2026-10-20T00:00.", rec.last())
}

func TestListInvertedRange(t *testing.T) {
	m := newManager(t)
	cmd, err := command.Parse("list 2026-10-15T00:00 2026-10-01T00:00")
	require.NoError(t, err)
	assert.ErrorIs(t, cmd.Execute(m, &recorder{}), apperror.ErrInvalidRange)
}

func TestDelete(t *testing.T) {
	m, rec := newManager(t), &recorder{}
	for _, name := range []string{"A", "B", "C"} {
		run(t, m, rec, "add "+name+" -k 10")
	}

	cmd, err := command.Parse("delete 5")
	require.NoError(t, err)
	assert.ErrorIs(t, cmd.Execute(m, rec), apperror.ErrIndexOutOfRange)
	assert.Equal(t, 3, m.Foods.Size())

	run(t, m, rec, "delete 2")
	assert.Contains(t, rec.last(), "B")
	assert.Equal(t, 2, m.Foods.Size())

	run(t, m, rec, "list")
	assert.Contains(t, rec.last(), "  2. 1 x C")
	assert.NotContains(t, rec.last(), "  3. ")
}

func TestClear(t *testing.T) {
	m, rec := newManager(t), &recorder{}
	run(t, m, rec, "add A -k 10")
	run(t, m, rec, "clear")
	assert.Equal(t, 0, m.Foods.Size())
}

func TestCalculate(t *testing.T) {
	m, rec := newManager(t), &recorder{}
	run(t, m, rec, "add Apple -k 50 -c 14 -x 1 -d 2026-10-19T08:00")
	run(t, m, rec, "add Rice -k 200 -c 45 -p 4 -f 0.5 -x 2 -d 2026-10-19T12:00")
	run(t, m, rec, "add Cake -k 400 -d 2026-10-01T12:00")

	run(t, m, rec, "calculate calorie")
	assert.Equal(t, "Total calorie intake for all entries: 850 kcal", rec.last())

	run(t, m, rec, "calculate calorie today")
	assert.Equal(t, "Total calorie intake for 2026-10-19: 450 kcal", rec.last())

	run(t, m, rec, "calculate fat today")
	assert.Equal(t, "Total fat intake for 2026-10-19: 1 g", rec.last())

	run(t, m, rec, "calculate all today")
	assert.Contains(t, rec.last(), "(2 entries)")
	assert.Contains(t, rec.last(), "carbohydrate: 104 g")
	assert.Contains(t, rec.last(), "protein: 8 g")
}

func TestProfileCommands(t *testing.T) {
	m, rec := newManager(t), &recorder{}

	run(t, m, rec, "name Jo Doe")
	assert.Equal(t, "Jo Doe", m.Person.Name)

	run(t, m, rec, "editinfo -g female -a 30 --height 200 -o 110 -c 100 -t 90 -l 4")
	assert.Equal(t, model.Female, m.Person.Gender)
	assert.Equal(t, 30, m.Person.Age)
	assert.Equal(t, 200, m.Person.Height)
	assert.Equal(t, 110, m.Person.OriginalWeight)
	assert.Equal(t, 100, m.Person.CurrentWeight)
	assert.Equal(t, 90, m.Person.TargetWeight)
	assert.Equal(t, model.FitnessHigh, m.Person.FitnessLevel)
	assert.Equal(t, "Jo Doe", m.Person.Name, "fields not given must be kept")

	run(t, m, rec, `editinfo --name "Jo Smith"`)
	assert.Equal(t, "Jo Smith", m.Person.Name)

	run(t, m, rec, "userinfo")
	assert.Contains(t, rec.last(), "Name: Jo Smith")
	assert.Contains(t, rec.last(), "BMI: 25.0 (Overweight)")
}

func TestEditInfoIsAtomic(t *testing.T) {
	m := newManager(t)
	_, err := command.Parse("editinfo -a 30 -l 9")
	require.Error(t, err)
	assert.Equal(t, 0, m.Person.Age)
}

func TestSaveAndExit(t *testing.T) {
	dir := t.TempDir()
	m, rec := newManagerIn(dir), &recorder{}

	run(t, m, rec, "add Apple -k 50")
	run(t, m, rec, "save")
	assert.Equal(t, "Your data has been saved.", rec.last())

	run(t, m, rec, "add Pear -k 60")
	for _, word := range []string{"exit", "BYE"} {
		cmd, err := command.Parse(word)
		require.NoError(t, err)
		assert.True(t, cmd.IsExit(), word)
	}
	cmd, _ := command.Parse("exit")
	require.NoError(t, cmd.Execute(m, rec))

	restored := newManagerIn(dir)
	status, err := restored.Load(&recorder{})
	require.NoError(t, err)
	assert.Equal(t, manager.Restored, status)
	assert.Equal(t, 2, restored.Foods.Size())
}

func TestHelpListsCommands(t *testing.T) {
	m, rec := newManager(t), &recorder{}
	run(t, m, rec, "help")
	for _, word := range []string{"add", "list", "delete", "calculate", "editinfo", "foods", "exit"} {
		assert.Contains(t, rec.last(), word)
	}
	assert.NotContains(t, rec.last(), "completion")

	cmd, err := command.Parse("HELP")
	require.NoError(t, err)
	assert.False(t, cmd.IsExit())
}

func TestHelpForOneCommand(t *testing.T) {
	m := newManager(t)

	for _, line := range []string{"help add", "add --help"} {
		rec := &recorder{}
		run(t, m, rec, line)
		assert.Contains(t, rec.last(), "add NAME... [flags]", line)
		assert.Contains(t, rec.last(), "--calorie", line)
		assert.Contains(t, rec.last(), "--store", line)
	}
	assert.Equal(t, 0, m.Foods.Size(), "help must not run the command")
}
