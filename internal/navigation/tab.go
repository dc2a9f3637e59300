package navigation

// Tab is one of the top-level sections of the guidebook.
type Tab int

const (
	TabHome Tab = iota
	TabMethods
	TabCases
	TabParticipate
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabHome, TabMethods, TabCases, TabParticipate}

var tabTitles = map[Tab]string{
	TabHome:        "首頁",
	TabMethods:     "工法",
	TabCases:       "案例",
	TabParticipate: "參與",
}

var tabNames = map[Tab]string{
	TabHome:        "home",
	TabMethods:     "methods",
	TabCases:       "cases",
	TabParticipate: "participate",
}

// Title returns the tab bar label.
func (t Tab) Title() string {
	if s, ok := tabTitles[t]; ok {
		return s
	}
	return "?"
}

func (t Tab) String() string {
	if s, ok := tabNames[t]; ok {
		return s
	}
	return "unknown"
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(Tabs))
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(Tabs) - 1) % len(Tabs))
}

// TargetTab names the tab whose list holds the target.
// Intros are only reachable from home, so they stay there.
func TargetTab(target ResolvedTarget) Tab {
	switch target.Kind() {
	case TargetMethod:
		return TabMethods
	case TargetCaseStudy:
		return TabCases
	case TargetParticipate:
		return TabParticipate
	default:
		return TabHome
	}
}

// EmptyChapterText is shown in place of a chapter that has no highlights.
const EmptyChapterText = "目前沒有精選案例"
