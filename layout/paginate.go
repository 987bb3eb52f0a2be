package layout

// Packer 把有序的记录流塞进连续的网格单元，跨页时通知调用方。
// Preview 为真时只排第一页：记录流截断到每页容量，且绝不翻页。
type Packer struct {
	Grid    GridSpec
	Preview bool
}

// Run 依序放置 n 条记录。
//
// 对每条记录调用 emit(index, row, col)；当一页刚好放满且后面还有
// 记录时调用 newPage(page)，page 为新开页面的序号（1 起，首页是 1，
// 第一次翻页传 2）——翻页回调在下一条记录放置之前发生，调用方应在
// 回调里开新页并画页眉。末条记录恰好填满一页时不会再翻页，
// 避免排出一张空白的尾页。
//
// 返回排版消耗的页数：n == 0 时为 0（零记录不产出页面；若调用方
// 已经预先画了页眉，那张已打开的页面归调用方所有，与这里无关）。
// 页号通过参数逐层传递，不存在全局的“当前页”状态。
func (p Packer) Run(n int, emit func(index, row, col int) error, newPage func(page int) error) (int, error) {
	grid := p.Grid.normalized()
	perPage := grid.CellsPerPage()
	if p.Preview && n > perPage {
		n = perPage
	}
	if n == 0 {
		return 0, nil
	}

	pages := 1
	for i := 0; i < n; i++ {
		if i > 0 && i%perPage == 0 {
			// 上一页已满且仍有记录，翻页
			pages++
			if newPage != nil {
				if err := newPage(pages); err != nil {
					return pages, err
				}
			}
		}
		pos := i % perPage
		if err := emit(i, pos/grid.Cols, pos%grid.Cols); err != nil {
			return pages, err
		}
	}
	return pages, nil
}
