package shop

func badge(s string) *string { return &s }

var seedCategories = []Category{
	{ID: "spices", Name: "التوابل والبهارات", Icon: "🌶️"},
	{ID: "grains", Name: "الحبوب والدقيق", Icon: "🌾"},
	{ID: "drinks", Name: "المشروبات والكركديه", Icon: "🥤"},
	{ID: "sweets", Name: "التمور والحلويات", Icon: "🍬"},
	{ID: "natural", Name: "منتجات طبيعية", Icon: "🌿"},
}

const imgBase = "https://images.unsplash.com/"
const imgOpts = "?q=80&w=1000&auto=format&fit=crop"

var seedProducts = []Product{
	{
		Name: "كركديه سوداني فاخر", NameEn: "Premium Sudanese Hibiscus", Price: 4500, Category: "drinks",
		Image: imgBase + "photo-1564858826723-57c2a74c2d61" + imgOpts, Rating: 4.8, Reviews: 120, Badge: badge("الأكثر مبيعاً"),
		Description: "كركديه سوداني فاخر مجفف بعناية من أفضل المزارع السودانية. يُقدم ساخنًا أو باردًا بطعم رائع وفوائد صحية عديدة.",
		InStock:     true,
	},
	{
		Name: "صمغ عربي هشاب", NameEn: "Gum Arabic (Hashab)", Price: 8000, Category: "natural",
		Image: imgBase + "photo-1612198188060-c7c2a3b66eae" + imgOpts, Rating: 5.0, Reviews: 85, Badge: badge("عضوي"),
		Description: "صمغ عربي من نوع الهشاب الفاخر، يُستخدم للأغراض الصحية والغذائية. غني بالألياف الطبيعية.",
		InStock:     true,
	},
	{
		Name: "بهارات مشكلة (سبيشيال)", NameEn: "Special Mixed Spices", Price: 3200, Category: "spices",
		Image: imgBase + "photo-1596040033229-a9821ebd058d" + imgOpts, Rating: 4.9, Reviews: 200,
		Description: "خلطة بهارات سودانية مشكلة من أجود أنواع التوابل. مثالية للأطباق التقليدية والحديثة.",
		InStock:     true,
	},
	{
		Name: "دقيق ذرة (طحين)", NameEn: "Corn Flour", Price: 2100, Category: "grains",
		Image: imgBase + "photo-1620916297397-a4a5402a3c6c" + imgOpts, Rating: 4.5, Reviews: 45, Badge: badge("جديد"),
		Description: "دقيق ذرة سوداني طبيعي لتحضير العصيدة والكسرة وغيرها من الأطباق السودانية التقليدية.",
		InStock:     true,
	},
	{
		Name: "بامية مجففة (ويكة)", NameEn: "Dried Okra (Weka)", Price: 1800, Category: "spices",
		Image: imgBase + "photo-1459411621453-7b03977f4bfc" + imgOpts, Rating: 4.7, Reviews: 150,
		Description: "بامية مجففة ومطحونة بعناية، تُستخدم في تحضير أشهر الأطباق السودانية مثل الملاح.",
		InStock:     true,
	},
	{
		Name: "تمر قنديلة", NameEn: "Gondila Dates", Price: 5500, Category: "sweets",
		Image: imgBase + "photo-1549487561-125026e6327c" + imgOpts, Rating: 4.9, Reviews: 310, Badge: badge("موسمي"),
		Description: "تمر قنديلة السوداني الفاخر، حلو المذاق وغني بالعناصر الغذائية. من أفضل أنواع التمور.",
		InStock:     true,
	},
	{
		Name: "شطة سودانية حارة", NameEn: "Sudanese Hot Chili", Price: 1500, Category: "spices",
		Image: imgBase + "photo-1583119022894-919a68a3d0e3" + imgOpts, Rating: 4.6, Reviews: 90,
		Description: "شطة سودانية أصلية بدرجات حرارة مختلفة. تضيف نكهة مميزة لكل أطباقك.",
		InStock:     true,
	},
	{
		Name: "دكوة (خلطة القهوة)", NameEn: "Dakwa Coffee Mix", Price: 3800, Category: "drinks",
		Image: imgBase + "photo-1495474472287-4d71bcdd2085" + imgOpts, Rating: 4.8, Reviews: 175, Badge: badge("مميز"),
		Description: "خلطة القهوة السودانية التقليدية مع التوابل العطرية. تجربة قهوة لا مثيل لها.",
		InStock:     true,
	},
}
