package report

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Churchillk/WealthTracker/internal/database"
	"github.com/Churchillk/WealthTracker/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testNow is the fixed clock every report test runs against.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// testDB opens a fresh in-memory database, named after the test so shared
// cache stays within one test.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, PasswordHash: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDashboard(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice")
	bob := testUser(t, db, "bob")

	db.Create(&models.Income{UserID: alice.ID, Wallet: models.WalletBank, Amount: 100, Date: testNow.AddDate(0, 0, -1)})
	db.Create(&models.Income{UserID: alice.ID, Wallet: models.WalletMpesa, Amount: 50, Date: testNow.AddDate(0, 0, -2)})
	db.Create(&models.Expense{UserID: alice.ID, Name: "Business lunch", Worth: 30, Category: models.CategoryBusiness, Date: testNow.AddDate(0, 0, -1)})

	// another tenant's rows must never leak in
	db.Create(&models.Income{UserID: bob.ID, Wallet: models.WalletBank, Amount: 999, Date: testNow})
	db.Create(&models.Expense{UserID: bob.ID, Name: "Business trip", Worth: 500, Category: models.CategoryBusiness, Date: testNow})

	s, err := Dashboard(db, alice.ID, testNow)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if s.TotalIncome != 150 {
		t.Errorf("TotalIncome = %v, want 150", s.TotalIncome)
	}
	if s.TotalExpenses != 30 {
		t.Errorf("TotalExpenses = %v, want 30", s.TotalExpenses)
	}
	if s.Balance != s.TotalIncome-s.TotalExpenses {
		t.Errorf("Balance = %v, want income minus expenses = %v", s.Balance, s.TotalIncome-s.TotalExpenses)
	}
	if s.Balance != 120 {
		t.Errorf("Balance = %v, want 120", s.Balance)
	}

	if got := s.ExpensesByKeyword["Business"]; got != 30 {
		t.Errorf("ExpensesByKeyword[Business] = %v, want 30", got)
	}
	if got := s.ExpensesByKeyword["Personal"]; got != 0 {
		t.Errorf("ExpensesByKeyword[Personal] = %v, want 0", got)
	}

	if len(s.DailyIncome) != 2 {
		t.Fatalf("len(DailyIncome) = %d, want 2", len(s.DailyIncome))
	}
	if s.DailyIncome[0].Day >= s.DailyIncome[1].Day {
		t.Errorf("daily series not ascending: %v before %v", s.DailyIncome[0].Day, s.DailyIncome[1].Day)
	}
	if s.DailyIncome[0].Total != 50 || s.DailyIncome[1].Total != 100 {
		t.Errorf("daily totals = [%v %v], want [50 100]", s.DailyIncome[0].Total, s.DailyIncome[1].Total)
	}

	if len(s.RecentIncomes) != 2 {
		t.Errorf("len(RecentIncomes) = %d, want 2 (bob's rows must not leak)", len(s.RecentIncomes))
	}
	if len(s.RecentExpenses) != 1 {
		t.Errorf("len(RecentExpenses) = %d, want 1", len(s.RecentExpenses))
	}
}

func TestDashboard_EmptyUser(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "empty")

	s, err := Dashboard(db, user.ID, testNow)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if s.TotalIncome != 0 || s.TotalExpenses != 0 || s.NetWorth != 0 || s.Balance != 0 {
		t.Errorf("empty user sums = %v/%v/%v/%v, want all 0",
			s.TotalIncome, s.TotalExpenses, s.NetWorth, s.Balance)
	}
	if s.ActiveProjects != 0 || s.UpcomingEvents != 0 {
		t.Errorf("empty user counts = %d/%d, want 0/0", s.ActiveProjects, s.UpcomingEvents)
	}
	if len(s.DailyIncome) != 0 {
		t.Errorf("len(DailyIncome) = %d, want 0", len(s.DailyIncome))
	}
	for kw, total := range s.ExpensesByKeyword {
		if total != 0 {
			t.Errorf("ExpensesByKeyword[%s] = %v, want 0", kw, total)
		}
	}
}

func TestDashboard_ActiveProjectCount(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")

	project := models.Project{UserID: user.ID, Name: "ledger rewrite", Status: models.StatusPlanning}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}

	s, err := Dashboard(db, user.ID, testNow)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if s.ActiveProjects != 0 {
		t.Errorf("ActiveProjects with Planning project = %d, want 0", s.ActiveProjects)
	}

	if err := db.Model(&project).Update("status", models.StatusInProgress).Error; err != nil {
		t.Fatalf("update status: %v", err)
	}

	s, err = Dashboard(db, user.ID, testNow)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if s.ActiveProjects != 1 {
		t.Errorf("ActiveProjects after move to In Progress = %d, want 1", s.ActiveProjects)
	}
}

func TestDashboard_NetWorthFromSources(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")

	db.Create(&models.IncomeSource{UserID: user.ID, Name: "Acme", Client: "Acme Ltd", Worth: 1200})
	db.Create(&models.IncomeSource{UserID: user.ID, Name: "Side gig", Client: "Monopoly", Worth: 300})

	s, err := Dashboard(db, user.ID, testNow)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if s.NetWorth != 1500 {
		t.Errorf("NetWorth = %v, want 1500", s.NetWorth)
	}
}

func TestSavings(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice")
	bob := testUser(t, db, "bob")

	db.Create(&models.EmergencyFund{UserID: alice.ID, Wallet: models.WalletBank, Amount: 200})
	db.Create(&models.EmergencyFund{UserID: alice.ID, Wallet: models.WalletMpesa, Amount: 50})
	db.Create(&models.IncomeGoal{UserID: alice.ID, Wallet: models.WalletBank, Amount: 500})
	db.Create(&models.EmergencyFund{UserID: bob.ID, Wallet: models.WalletPaypal, Amount: 999})

	out, err := Savings(db, alice.ID)
	if err != nil {
		t.Fatalf("Savings() error = %v", err)
	}

	want := []WalletSavings{
		{Wallet: models.WalletMpesa, Saved: 50, Target: 0},
		{Wallet: models.WalletBank, Saved: 200, Target: 500},
	}
	if len(out) != len(want) {
		t.Fatalf("len(Savings) = %d, want %d (%+v)", len(out), len(want), out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Savings[%d] = %+v, want %+v", i, out[i], want[i])
		}
	}
}

func TestIncomes(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")

	db.Create(&models.Income{UserID: user.ID, Amount: 100, Date: testNow.AddDate(0, 0, -1)})
	db.Create(&models.Income{UserID: user.ID, Amount: 50, Date: testNow.AddDate(0, -2, 0)})

	st, err := Incomes(db, user.ID, testNow)
	if err != nil {
		t.Fatalf("Incomes() error = %v", err)
	}
	if st.Total != 150 {
		t.Errorf("Total = %v, want 150", st.Total)
	}
	if st.MonthTotal != 100 {
		t.Errorf("MonthTotal = %v, want 100 (older income is outside the month)", st.MonthTotal)
	}
	if !almostEqual(st.AvgAmount, 75) {
		t.Errorf("AvgAmount = %v, want 75", st.AvgAmount)
	}
	if st.Count != 2 {
		t.Errorf("Count = %d, want 2", st.Count)
	}
}

func TestSources(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")

	db.Create(&models.IncomeSource{UserID: user.ID, Name: "Day job", Client: "Monopoly", Worth: 900})
	db.Create(&models.IncomeSource{UserID: user.ID, Name: "Contract", Client: "Acme Ltd", Worth: 400})
	db.Create(&models.IncomeSource{UserID: user.ID, Name: "Retainer", Client: "Acme Ltd", Worth: 100})

	st, err := Sources(db, user.ID)
	if err != nil {
		t.Fatalf("Sources() error = %v", err)
	}
	if st.TotalWorth != 1400 {
		t.Errorf("TotalWorth = %v, want 1400", st.TotalWorth)
	}
	if st.Salary != 900 {
		t.Errorf("Salary = %v, want 900 (Monopoly sources only)", st.Salary)
	}
	if st.Clients != 2 {
		t.Errorf("Clients = %d, want 2 distinct", st.Clients)
	}
}
