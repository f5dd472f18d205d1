package ledger

import "github.com/amirkokoaa-byte/sales/internal/models"

// ProductCatalogue is the fixed list of products offered on the order
// form. Orders may still carry free-text item names.
var ProductCatalogue = []string{
	"صنف 500 سنجل",
	"500 عرض 3*1 لارج",
	"500 عرض 3*1 سمارت",
	"500 عرض 3*1 مزيكا",
	"500 عرض 3*1 كلاسيك",
	"600 عرض 3*1",
	"400 عرض 3*1",
	"2 رول مطبخ كلاسيك",
	"6 رول مطبخ",
	"2 بكرة سوبر رول",
	"6 بكرة سوبر رول",
	"بكر اوزان L",
	"بكرة اوزان XL",
	"بكر اوزان XXL",
}

// defaultBranches seeds the branch collection on first run (or after the
// stored payload fails to load).
func defaultBranches() []models.Branch {
	return []models.Branch{
		{ID: "1", Name: "مبيعات جمال سلامه م الجامع", IsCustom: false},
		{ID: "2", Name: "مبيعات جمال سلامه الشيراتون", IsCustom: false},
		{ID: "3", Name: "مبيعات اسواق الشرقيه", IsCustom: false},
		{ID: "4", Name: "مبيعات هايبر النسر", IsCustom: false},
	}
}
