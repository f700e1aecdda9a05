package layout

import "github.com/fundlens/factsheet/model"

// Merge interleaves extracted tables into each page's content list and
// establishes the final reading order. tablesByPage is keyed by 0-based
// page index; pages without tables are simply absent. Table items carry no
// bounding box, so they sort after all positioned items of their class.
func Merge(pages []*model.Page, tablesByPage map[int][]*model.Table) {
	for i, page := range pages {
		for _, tbl := range tablesByPage[i] {
			page.Content = append(page.Content, model.ContentItem{
				Kind:  model.KindTable,
				Table: tbl,
			})
		}
		page.SortContent()
	}
}
