package catalog

// Category ids as seeded by the marketplace backend.
const (
	CategoryElectronics = 1
	CategoryClothing    = 2
	CategoryShoes       = 3
	CategoryHome        = 5
	CategorySports      = 6
	CategoryBooks       = 7
)

var defaultTemplates = []Template{
	{"iPhone 13 Pro Max 256G", CategoryElectronics, PriceRange{3500, 5500}, []string{"手机", "苹果", "电子产品"}},
	{"MacBook Pro 14寸 M2芯片", CategoryElectronics, PriceRange{8000, 15000}, []string{"笔记本", "苹果", "电脑"}},
	{"iPad Air 5代 64G", CategoryElectronics, PriceRange{2800, 3800}, []string{"平板", "苹果", "学习"}},
	{"Sony WH-1000XM4 降噪耳机", CategoryElectronics, PriceRange{1200, 1800}, []string{"耳机", "索尼", "音乐"}},
	{"佳能 EOS R6 微单相机", CategoryElectronics, PriceRange{10000, 15000}, []string{"相机", "佳能", "摄影"}},
	{"戴尔 XPS 15 笔记本电脑", CategoryElectronics, PriceRange{6000, 10000}, []string{"笔记本", "戴尔", "办公"}},
	{"任天堂 Switch OLED版", CategoryElectronics, PriceRange{1800, 2500}, []string{"游戏机", "任天堂", "娱乐"}},
	{"AirPods Pro 2代", CategoryElectronics, PriceRange{1200, 1600}, []string{"耳机", "苹果", "无线"}},
	{"小米13 Ultra 256G", CategoryElectronics, PriceRange{3000, 4500}, []string{"手机", "小米", "拍照"}},
	{"华为 MatePad Pro 12.6", CategoryElectronics, PriceRange{3500, 5000}, []string{"平板", "华为", "办公"}},

	{"优衣库羽绒服男款", CategoryClothing, PriceRange{200, 500}, []string{"羽绒服", "冬装", "保暖"}},
	{"Nike Air Force 1 低帮板鞋", CategoryShoes, PriceRange{400, 700}, []string{"运动鞋", "耐克", "百搭"}},
	{"Adidas Ultraboost 跑步鞋", CategoryShoes, PriceRange{500, 900}, []string{"跑鞋", "阿迪达斯", "舒适"}},
	{"北面冲锋衣 Gore-Tex", CategoryClothing, PriceRange{800, 1500}, []string{"冲锋衣", "户外", "防水"}},
	{"Levi's 501 经典牛仔裤", CategoryClothing, PriceRange{200, 400}, []string{"牛仔裤", "经典", "休闲"}},
	{"Coach 托特包 真皮", CategoryClothing, PriceRange{1000, 2000}, []string{"包包", "蔻驰", "通勤"}},
	{"优衣库 U系列 卫衣", CategoryClothing, PriceRange{100, 200}, []string{"卫衣", "休闲", "舒适"}},
	{"ZARA 西装外套", CategoryClothing, PriceRange{300, 600}, []string{"西装", "正装", "商务"}},

	{"高等数学同济第七版", CategoryBooks, PriceRange{20, 40}, []string{"教材", "数学", "考研"}},
	{"线性代数同济第六版", CategoryBooks, PriceRange{15, 30}, []string{"教材", "数学", "基础"}},
	{"英语四级真题及解析", CategoryBooks, PriceRange{20, 40}, []string{"教材", "英语", "四级"}},
	{"Python编程从入门到实践", CategoryBooks, PriceRange{40, 70}, []string{"编程", "Python", "入门"}},
	{"算法导论 第三版", CategoryBooks, PriceRange{80, 120}, []string{"编程", "算法", "经典"}},
	{"考研政治肖秀荣1000题", CategoryBooks, PriceRange{30, 50}, []string{"考研", "政治", "刷题"}},

	{"小米台灯Pro", CategoryHome, PriceRange{80, 150}, []string{"台灯", "护眼", "学习"}},
	{"戴森 V12 无线吸尘器", CategoryHome, PriceRange{2000, 3500}, []string{"吸尘器", "戴森", "清洁"}},
	{"飞利浦电动牙刷", CategoryHome, PriceRange{200, 400}, []string{"牙刷", "电动", "口腔"}},
	{"雀巢咖啡机 Nespresso", CategoryHome, PriceRange{500, 1000}, []string{"咖啡机", "胶囊", "办公"}},
	{"宜家KALLAX书架", CategoryHome, PriceRange{200, 400}, []string{"书架", "收纳", "家居"}},

	{"Yonex 羽毛球拍 弓箭11", CategorySports, PriceRange{800, 1500}, []string{"羽毛球拍", "尤尼克斯", "进攻"}},
	{"Decathlon 瑜伽垫 10mm", CategorySports, PriceRange{50, 100}, []string{"瑜伽垫", "迪卡侬", "健身"}},
	{"李宁跑步机家用款", CategorySports, PriceRange{1500, 3000}, []string{"跑步机", "健身", "有氧"}},
	{"斯伯丁NBA官方篮球", CategorySports, PriceRange{150, 300}, []string{"篮球", "斯伯丁", "运动"}},
	{"KEEP智能哑铃", CategorySports, PriceRange{300, 600}, []string{"哑铃", "健身", "力量"}},
}

var defaultTimeUsed = []string{
	"一个月", "两个月", "三个月", "半年", "一年", "一年半", "两年", "几个星期", "一周",
}

var defaultConditions = []string{
	"保存完好", "几乎全新", "轻微使用痕迹", "正常使用", "配件齐全", "功能完好",
}

var defaultChannels = []string{"京东自营", "天猫旗舰店", "线下专卖店", "官网购买", "朋友赠送", "海外代购"}

var defaultFrequencies = []string{"每天使用", "偶尔使用", "基本闲置", "使用次数不超过10次", "每周使用1-2次"}

var defaultStatusDetails = []string{
	"外观完好无划痕，功能一切正常，电池健康度95%以上。",
	"有轻微使用痕迹，不影响使用，所有功能正常。",
	"成色如图所示，实物拍摄，所见即所得。",
	"几乎全新，买来用了几次就一直放着了。",
	"正常使用痕迹，整体状态良好，无暗病。",
}

var defaultSellReasons = []string{
	"升级换代，闲置出售",
	"毕业清仓，低价处理",
	"搬家不方便带走",
	"冲动消费买多了",
	"换了新的，旧的闲置",
	"不太适合自己，转给有缘人",
}

// The trailing empty entry means "no extra info" for roughly one listing in six.
var defaultExtraInfos = []string{
	"可提供购买凭证，支持验货。",
	"同城可面交，外地顺丰到付。",
	"急出，价格好商量！",
	"原装配件齐全，盒子说明书都在。",
	"送运费险，放心购买。",
	"",
}

var defaultLocations = []string{"北京", "上海", "广州", "深圳", "杭州", "成都", "武汉", "南京", "西安", "苏州"}

// Default returns a fresh copy of the built-in catalog.
func Default() *Catalog {
	templates := make([]Template, len(defaultTemplates))
	for i, t := range defaultTemplates {
		t.Keywords = append([]string(nil), t.Keywords...)
		templates[i] = t
	}

	return &Catalog{
		Templates:     templates,
		TimeUsed:      clone(defaultTimeUsed),
		Conditions:    clone(defaultConditions),
		Channels:      clone(defaultChannels),
		Frequencies:   clone(defaultFrequencies),
		StatusDetails: clone(defaultStatusDetails),
		SellReasons:   clone(defaultSellReasons),
		ExtraInfos:    clone(defaultExtraInfos),
		Locations:     clone(defaultLocations),
	}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
