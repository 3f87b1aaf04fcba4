package render

// Fixed business terms of the proposal. These figures appear verbatim in the
// marketing page, the approval emails and the contract appendices; the
// contract is a legal artifact, so they must never drift from the displayed
// totals (see TestDevelopmentCostTotals).

const (
	// ProjectName is the proposal's product name as shown to the client.
	ProjectName = "תוכנית ההבראה הפיננסית הדיגיטלית"

	// DeveloperName, DeveloperLicense and DeveloperAddress identify the
	// developer party on the contract; fixed, never user-edited.
	DeveloperName    = "Triroars"
	DeveloperLicense = "300700556"
	DeveloperAddress = "צבי סגל 20 א׳ אשקלון"

	// DevelopmentTotalCost is the full project price in ₪ before VAT.
	DevelopmentTotalCost = 33000
	// DevelopmentTotalHours is the estimated total effort.
	DevelopmentTotalHours = 80
	// ProjectDurationWeeks is the contractual delivery window.
	ProjectDurationWeeks = 8
	// MonthlyMaintenanceCost is the optional maintenance retainer in ₪.
	MonthlyMaintenanceCost = 1000
)

// CostItem is one line of the development cost appendix.
type CostItem struct {
	Component   string
	Description string
	Hours       int
	Cost        int
}

// DevelopmentCostItems lists the eight development line items. Hours sum to
// DevelopmentTotalHours and costs to DevelopmentTotalCost.
var DevelopmentCostItems = []CostItem{
	{Component: "אפיון ו־UX", Description: "תכנון חוויית משתמש ומסכים", Hours: 12, Cost: 5000},
	{Component: "דף שיווקי SaaS", Description: "Hero, CTA, סליקה", Hours: 10, Cost: 4100},
	{Component: "מערכת משתמשים", Description: "דשבורד, גרפים, תקציב, יעדים", Hours: 20, Cost: 8200},
	{Component: "וואטסאפ GreenAPI", Description: "שליחה, קליטה, webhook", Hours: 10, Cost: 4100},
	{Component: "אינטגרציית OpenAI", Description: "שיחות בוט חכמות", Hours: 8, Cost: 3300},
	{Component: "OCR", Description: "זיהוי קבלות אוטומטי", Hours: 6, Cost: 2500},
	{Component: "ממשק אדמין", Description: "ניהול משתמשים ודוחות", Hours: 8, Cost: 3300},
	{Component: "QA ונגישות", Description: "בדיקות, תיקונים והשקה", Hours: 6, Cost: 2500},
}

// PaymentMilestone is one row of the payment schedule.
type PaymentMilestone struct {
	Stage   string
	Percent string
	Amount  int
	Timing  string
}

// PaymentMilestones split DevelopmentTotalCost 30/40/20/10.
var PaymentMilestones = []PaymentMilestone{
	{Stage: "א. פתיחת פרויקט", Percent: "30%", Amount: 9900, Timing: "עם חתימת ההסכם"},
	{Stage: "ב. מסירת גרסת ביניים", Percent: "40%", Amount: 13200, Timing: "לאחר שלב הפיתוח הראשי"},
	{Stage: "ג. אינטגרציות ובדיקות", Percent: "20%", Amount: 6600, Timing: "לפני השקה"},
	{Stage: "ד. השקה מלאה", Percent: "10%", Amount: 3300, Timing: "ביום העלייה לאוויר"},
}

// UsageTier is one row of the running-cost scenarios appendix.
type UsageTier struct {
	Users          int
	MessagesPerDay int
	WhatsAppCost   int
	AICost         int
	StorageCost    int
	MonthlyTotal   int
}

// UsageTiers are the business scenarios shown on the marketing page.
var UsageTiers = []UsageTier{
	{Users: 50, MessagesPerDay: 200, WhatsAppCost: 40, AICost: 20, StorageCost: 10, MonthlyTotal: 70},
	{Users: 100, MessagesPerDay: 400, WhatsAppCost: 70, AICost: 40, StorageCost: 20, MonthlyTotal: 120},
	{Users: 500, MessagesPerDay: 2000, WhatsAppCost: 250, AICost: 100, StorageCost: 50, MonthlyTotal: 400},
	{Users: 1000, MessagesPerDay: 4000, WhatsAppCost: 500, AICost: 200, StorageCost: 100, MonthlyTotal: 800},
}

// WorkStage is one row of the delivery timeline table in the contract.
type WorkStage struct {
	Name        string
	Description string
	Duration    string
}

// WorkStages is the four-stage delivery plan referenced by clause 2.
var WorkStages = []WorkStage{
	{Name: "שלב א׳", Description: "אפיון סופי ועיצוב UX/UI", Duration: "שבועיים"},
	{Name: "שלב ב׳", Description: "פיתוח רכיבי המערכת ודשבורד המשתמש", Duration: "שלושה שבועות"},
	{Name: "שלב ג׳", Description: "אינטגרציות (GreenAPI, OpenAI, OCR, חשבונית ירוקה)", Duration: "שבועיים"},
	{Name: "שלב ד׳", Description: "בדיקות, תיקונים והשקה", Duration: "שבוע"},
}

// ProjectGoals mirror the goals section of the marketing page.
var ProjectGoals = []string{
	"להנגיש ניהול תקציב לכל אדם",
	"לספק ליווי פיננסי שוטף בצורה פשוטה, קלילה ואנושית",
	"להפוך נתונים פיננסיים לתהליך מובן ומעורר מוטיבציה",
	"ליצור חוויית שימוש צעירה וזורמת בשפה מדוברת",
}

// TechnologyStack is the proposed stack, one line as marketed.
const TechnologyStack = "React + Supabase + GreenAPI + OpenAI + Green Invoice + Vercel"
