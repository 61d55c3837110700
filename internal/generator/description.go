package generator

import "strings"

const descriptionTemplate = `这是一款{product_name}，购入{time_used}，{condition}。

【商品详情】
- 品牌/型号：{brand}
- 购买渠道：{channel}
- 购买时间：{purchase_date}
- 使用频率：{frequency}

【商品状态】
{status_detail}

【出售原因】
{sell_reason}

【交易方式】
支持当面交易，可小刀。诚心购买可议价，非诚勿扰。

【温馨提示】
二手物品，介意者慎拍。看好再买，售出不退。有问题请及时沟通，谢谢理解！

{extra_info}
`

// purchaseDateLayout renders as e.g. 2024年03月.
const purchaseDateLayout = "2006年01月"

type descriptionFields struct {
	ProductName  string
	TimeUsed     string
	Condition    string
	Brand        string
	Channel      string
	PurchaseDate string
	Frequency    string
	StatusDetail string
	SellReason   string
	ExtraInfo    string
}

func renderDescription(f descriptionFields) string {
	return strings.NewReplacer(
		"{product_name}", f.ProductName,
		"{time_used}", f.TimeUsed,
		"{condition}", f.Condition,
		"{brand}", f.Brand,
		"{channel}", f.Channel,
		"{purchase_date}", f.PurchaseDate,
		"{frequency}", f.Frequency,
		"{status_detail}", f.StatusDetail,
		"{sell_reason}", f.SellReason,
		"{extra_info}", f.ExtraInfo,
	).Replace(descriptionTemplate)
}
