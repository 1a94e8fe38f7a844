package report

import (
	"testing"

	"github.com/Churchillk/WealthTracker/internal/models"
)

func TestExpenses(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice")
	bob := testUser(t, db, "bob")

	// 30 this month, 20 in the previous month
	db.Create(&models.Expense{UserID: alice.ID, Name: "Business lunch", Worth: 30, Category: models.CategoryBusiness, Date: testNow.AddDate(0, 0, -5)})
	db.Create(&models.Expense{UserID: alice.ID, Name: "Groceries", Worth: 20, Category: models.CategoryFood, Date: testNow.AddDate(0, -1, 0)})
	db.Create(&models.Expense{UserID: bob.ID, Name: "Rent", Worth: 700, Category: models.CategoryPersonal, Date: testNow})

	st, err := Expenses(db, alice.ID, testNow, 100)
	if err != nil {
		t.Fatalf("Expenses() error = %v", err)
	}

	if st.Total != 50 {
		t.Errorf("Total = %v, want 50", st.Total)
	}
	if st.MonthTotal != 30 {
		t.Errorf("MonthTotal = %v, want 30", st.MonthTotal)
	}
	if !almostEqual(st.MonthlyAvg, 25) {
		t.Errorf("MonthlyAvg = %v, want 25 (50 over 2 months)", st.MonthlyAvg)
	}
	if !almostEqual(st.DailyAvg, 2) {
		t.Errorf("DailyAvg = %v, want 2 (30 over 15 days)", st.DailyAvg)
	}
	if st.BudgetLeft != 70 {
		t.Errorf("BudgetLeft = %v, want 70", st.BudgetLeft)
	}
	if !almostEqual(st.BudgetUsed, 30) {
		t.Errorf("BudgetUsed = %v, want 30", st.BudgetUsed)
	}

	if len(st.Trend) != 2 {
		t.Fatalf("len(Trend) = %d, want 2", len(st.Trend))
	}
	if st.Trend[0].Month != "May 2025" || st.Trend[0].Total != 20 {
		t.Errorf("Trend[0] = %+v, want May 2025 / 20", st.Trend[0])
	}
	if st.Trend[1].Month != "Jun 2025" || st.Trend[1].Total != 30 {
		t.Errorf("Trend[1] = %+v, want Jun 2025 / 30", st.Trend[1])
	}

	if len(st.ByCategory) != len(models.ExpenseCategories) {
		t.Fatalf("len(ByCategory) = %d, want %d", len(st.ByCategory), len(models.ExpenseCategories))
	}
	shares := make(map[string]CategoryShare, len(st.ByCategory))
	for _, s := range st.ByCategory {
		shares[s.Category] = s
	}
	if got := shares[models.CategoryBusiness]; got.Total != 30 || !almostEqual(got.Percentage, 60) {
		t.Errorf("BUSINESS share = %+v, want 30 / 60%%", got)
	}
	if got := shares[models.CategoryFood]; got.Total != 20 || !almostEqual(got.Percentage, 40) {
		t.Errorf("FOOD share = %+v, want 20 / 40%%", got)
	}
	if got := shares[models.CategoryPersonal]; got.Total != 0 || got.Percentage != 0 {
		t.Errorf("PERSONAL share = %+v, want empty (bob's rent must not leak)", got)
	}
}

func TestExpenses_BudgetClamp(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")

	db.Create(&models.Expense{UserID: user.ID, Name: "New laptop", Worth: 250, Category: models.CategoryBusiness, Date: testNow})

	st, err := Expenses(db, user.ID, testNow, 100)
	if err != nil {
		t.Fatalf("Expenses() error = %v", err)
	}
	if st.BudgetUsed != 100 {
		t.Errorf("BudgetUsed = %v, want clamp at 100", st.BudgetUsed)
	}
	if st.BudgetLeft != -150 {
		t.Errorf("BudgetLeft = %v, want -150 (overdraft stays visible)", st.BudgetLeft)
	}
}

func TestExpenses_Empty(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "empty")

	st, err := Expenses(db, user.ID, testNow, 100)
	if err != nil {
		t.Fatalf("Expenses() error = %v", err)
	}
	if st.Total != 0 || st.MonthTotal != 0 || st.MonthlyAvg != 0 || st.DailyAvg != 0 {
		t.Errorf("empty user stats = %+v, want all zero sums", st)
	}
	if st.BudgetUsed != 0 || st.BudgetLeft != 100 {
		t.Errorf("budget on empty user = used %v left %v, want 0 / 100", st.BudgetUsed, st.BudgetLeft)
	}
	if len(st.Trend) != 0 {
		t.Errorf("len(Trend) = %d, want 0", len(st.Trend))
	}
}
