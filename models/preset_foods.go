package models

// PresetFoods returns the seed catalog: common Thai dishes with typical
// sodium content in milligrams per serving. Copied into storage on first
// run; the returned slice is a fresh copy on every call.
func PresetFoods() []FoodItem {
	src := []FoodItem{
		{ID: "1", Name: "ข้าวกะเพราหมูสับ", SodiumMg: 1250, Category: "อาหารจานเดียว"},
		{ID: "2", Name: "ก๋วยเตี๋ยวน้ำตก", SodiumMg: 1800, Category: "อาหารจานเดียว"},
		{ID: "3", Name: "ข้าวมันไก่", SodiumMg: 950, Category: "อาหารจานเดียว"},
		{ID: "4", Name: "ข้าวหมูแดง", SodiumMg: 1100, Category: "อาหารจานเดียว"},
		{ID: "5", Name: "ผัดไทย", SodiumMg: 1400, Category: "อาหารจานเดียว"},
		{ID: "6", Name: "แซนวิชทูน่า", SodiumMg: 750, Category: "อาหารว่าง"},
		{ID: "7", Name: "ข้าวผัดหมู", SodiumMg: 980, Category: "อาหารจานเดียว"},
		{ID: "8", Name: "ส้มตำไทย", SodiumMg: 1200, Category: "อาหารไทย"},
		{ID: "9", Name: "น้ำพริกปลาทู", SodiumMg: 850, Category: "อาหารไทย"},
		{ID: "10", Name: "แกงจืดเต้าหู้", SodiumMg: 600, Category: "อาหารไทย"},
		{ID: "11", Name: "บะหมี่กึ่งสำเร็จรูป", SodiumMg: 1600, Category: "อาหารสำเร็จรูป"},
		{ID: "12", Name: "ข้าวต้มซองสำเร็จรูป", SodiumMg: 1200, Category: "อาหารสำเร็จรูป"},
		{ID: "13", Name: "มาม่าต้มยำกุ้ง", SodiumMg: 1700, Category: "อาหารสำเร็จรูป"},
		{ID: "14", Name: "ข้าวกล่องแช่แข็ง", SodiumMg: 1100, Category: "อาหารสำเร็จรูป"},
		{ID: "15", Name: "แฮมเบอร์เกอร์", SodiumMg: 1200, Category: "ฟาสต์ฟู้ด"},
		{ID: "16", Name: "เฟรนช์ฟรายส์", SodiumMg: 350, Category: "ฟาสต์ฟู้ด"},
		{ID: "17", Name: "พิซซ่า (1 ชิ้น)", SodiumMg: 600, Category: "ฟาสต์ฟู้ด"},
		{ID: "18", Name: "ไก่ทอด (1 ชิ้น)", SodiumMg: 440, Category: "ฟาสต์ฟู้ด"},
		{ID: "19", Name: "นมเปรี้ยว", SodiumMg: 50, Category: "เครื่องดื่ม"},
		{ID: "20", Name: "น้ำอัดลม", SodiumMg: 30, Category: "เครื่องดื่ม"},
		{ID: "21", Name: "นมจืด", SodiumMg: 120, Category: "เครื่องดื่ม"},
		{ID: "22", Name: "น้ำเต้าหู้", SodiumMg: 15, Category: "เครื่องดื่ม"},
		{ID: "23", Name: "ซุปฟักทอง", SodiumMg: 350, Category: "ซุป"},
		{ID: "24", Name: "ต้มยำกุ้ง", SodiumMg: 950, Category: "ซุป"},
		{ID: "25", Name: "แกงเขียวหวาน", SodiumMg: 1050, Category: "อาหารไทย"},
		{ID: "26", Name: "อกไก่ย่าง", SodiumMg: 75, Category: "โปรตีน"},
		{ID: "27", Name: "ปลาแซลมอนย่าง", SodiumMg: 60, Category: "โปรตีน"},
		{ID: "28", Name: "ไข่ต้ม", SodiumMg: 65, Category: "โปรตีน"},
		{ID: "29", Name: "ข้าวสวย 1 จาน", SodiumMg: 5, Category: "เครื่องเคียง"},
		{ID: "30", Name: "ผัดผักรวม", SodiumMg: 300, Category: "ผัก"},
	}
	out := make([]FoodItem, len(src))
	copy(out, src)
	return out
}
