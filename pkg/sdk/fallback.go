package sdk

import "github.com/advmanik/casefolio/pkg/schema"

// FallbackCases returns the bundled dataset shown when the API is
// unreachable. The entries have no store id; they exist only so the public
// case list never renders empty.
func FallbackCases() []schema.Case {
	return []schema.Case{
		{
			Title:     "সিভিল মামলা - সম্পত্তি বিরোধ",
			Category:  "সিভিল",
			Summary:   "জমি সংক্রান্ত একটি জটিল মামলা যেখানে পারিবারিক সম্পত্তির অধিকার নিয়ে বিরোধ ছিল।",
			Outcome:   "মক্কেল বিজয়ী হয়েছেন এবং সম্পত্তির সম্পূর্ণ অধিকার পেয়েছেন।",
			CreatedAt: "2025-06-12T09:30:00Z",
		},
		{
			Title:     "ফৌজদারি মামলা - মিথ্যা অভিযোগ",
			Category:  "ফৌজদারি",
			Summary:   "একটি মিথ্যা অভিযোগের বিরুদ্ধে সফল প্রতিরক্ষা।",
			Outcome:   "মক্কেল সম্পূর্ণ খালাস পেয়েছেন এবং ক্ষতিপূরণ প্রদান করা হয়েছে।",
			CreatedAt: "2025-04-03T14:00:00Z",
		},
		{
			Title:     "পারিবারিক মামলা - অভিভাবকত্ব",
			Category:  "পারিবারিক",
			Summary:   "সন্তানের অভিভাবকত্ব নিয়ে দীর্ঘ আইনি লড়াই।",
			Outcome:   "মক্কেল সন্তানের পূর্ণ অভিভাবকত্ব লাভ করেছেন।",
			CreatedAt: "2025-01-20T11:15:00Z",
		},
		{
			Title:     "জমি রেজিস্ট্রেশন জালিয়াতি",
			Category:  "সিভিল",
			Summary:   "ভুয়া দলিলের মাধ্যমে জমি দখলের চেষ্টা প্রতিহত করা হয়।",
			Outcome:   "আদালত দলিল বাতিল করে মক্কেলের মালিকানা বহাল রেখেছেন।",
			CreatedAt: "2024-11-08T10:45:00Z",
		},
	}
}
