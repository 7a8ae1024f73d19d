package services

import "github.com/yukikurage/dashboard-demo-api/internal/models"

func seedTableOrders() []models.TableOrder {
	return []models.TableOrder{
		{ID: 2632, Code: "#2632", Name: "Brooklyn Zoe", Avatar: "https://i.pravatar.cc/40?img=12", Address: "302 Snider Street, RUTLAND, VT, 05701", Date: "2020-07-31", Price: 64, Status: models.OrderStatusPending},
		{ID: 9633, Code: "#9633", Name: "John McCormick", Avatar: "https://i.pravatar.cc/40?img=5", Address: "1096 Wiesman Street, CALMAR, IA, 52132", Date: "2020-08-01", Price: 35, Status: models.OrderStatusDispatch},
		{ID: 2634, Code: "#2634", Name: "Sandra Pugh", Avatar: "https://i.pravatar.cc/40?img=37", Address: "1640 Thorn Street, SAUL CITY, GA, 98905", Date: "2020-08-02", Price: 74, Status: models.OrderStatusCompleted},
		{ID: 2689, Code: "#2689", Name: "Vernie Hart", Avatar: "https://i.pravatar.cc/40?img=48", Address: "3898 Oak Drive, DOVER, DE, 19905", Date: "2020-08-02", Price: 82, Status: models.OrderStatusPending},
		{ID: 2956, Code: "#2956", Name: "Mark Clark", Avatar: "https://i.pravatar.cc/40?img=21", Address: "1855 Augusta Park, NASSAU, NY, 12062", Date: "2020-08-03", Price: 39, Status: models.OrderStatusDispatch},
		{ID: 2637, Code: "#2637", Name: "Rebekah Foster", Avatar: "https://i.pravatar.cc/40?img=14", Address: "3445 Park Boulevard, BOLA, CA, 95086", Date: "2020-08-03", Price: 57, Status: models.OrderStatusPending},
	}
}

func seedTaskCards() []models.TaskCard {
	return []models.TaskCard{
		{ID: 1, Title: "Search inspirations for upcoming project", Description: "Search inspirations for new finance product Mino project.", Tags: []string{"#website", "#client"}, Status: models.TaskStatusTodo, Time: "Progress", Comments: 12, Attachments: 8, People: []string{"BS", "AJ", "LK"}, Progress: 4, ProgressPercent: 40, Bg: "from-sky-100 to-indigo-100"},
		{ID: 2, Title: "Ginko mobile app design", Description: "Create user flow • Create wireframe • Design onboarding screens", Tags: []string{"#mobile app", "#client"}, Status: models.TaskStatusTodo, Time: "Note: We have a meeting 2:15 AM", Comments: 7, Attachments: 2, People: []string{"BS", "MJ"}, Progress: 6, ProgressPercent: 60, Bg: "from-violet-100 to-purple-100"},
		{ID: 3, Title: "Weihu product task and the task process pages", Description: "Have to finish this before weekend.", Tags: []string{"#website detail", "#product"}, Status: models.TaskStatusInProgress, Comments: 9, Attachments: 4, People: []string{"BS", "AJ", "LK", "MJ"}, Progress: 9, ProgressPercent: 90, Bg: "from-amber-100 to-orange-100"},
		{ID: 4, Title: "Design CRM shop product page responsive website", Tags: []string{"#webtool", "#client"}, Status: models.TaskStatusInProgress, Comments: 6, Attachments: 3, People: []string{"BS"}, Progress: 4, ProgressPercent: 40, Bg: "from-emerald-100 to-green-100"},
		{ID: 5, Title: "Crypto product landing page create in webflow", Tags: []string{"#development", "#client"}, Status: models.TaskStatusReview, Comments: 10, Attachments: 2, People: []string{"AJ", "MJ"}, Progress: 7, ProgressPercent: 70, Bg: "from-pink-100 to-fuchsia-100"},
		{ID: 6, Title: "Natvrek video platform web app design and develop", Tags: []string{"#product", "#client"}, Status: models.TaskStatusReview, Comments: 5, Attachments: 1, People: []string{"BS"}, Progress: 5, ProgressPercent: 50, Bg: "from-sky-100 to-indigo-100"},
		{ID: 7, Title: "Affiliate product full service", Description: "Branding • Landing page design & development • Marketing", Tags: []string{"#mobile app", "#client"}, Status: models.TaskStatusDone, Comments: 8, Attachments: 2, People: []string{"BS", "LK"}, Progress: 12, ProgressPercent: 100, Bg: "from-cyan-100 to-sky-100"},
		{ID: 8, Title: "Design Moll app product page redesign", Tags: []string{"#product", "#client"}, Status: models.TaskStatusDone, Comments: 12, Attachments: 3, People: []string{"MJ"}, Progress: 12, ProgressPercent: 100, Bg: "from-rose-100 to-orange-100"},
	}
}

func price(v float64) *float64 { return &v }

func seedFoods() []models.Food {
	return []models.Food{
		{ID: 1, Name: "Vegetable Burger", Price: 25, OldPrice: price(28.3), Rating: price(2.5), Img: "/burger/Burgers-1.png", Category: "Burger"},
		{ID: 2, Name: "Meat Burger", Price: 28, OldPrice: price(30), Rating: price(2.5), Img: "/burger/Burgers-2.png", Category: "Burger"},
		{ID: 3, Name: "Cheese Burger", Price: 32, OldPrice: price(33), Rating: price(2.5), Img: "/burger/Burgers-3.png", Category: "Burger"},
		{ID: 4, Name: "Vegetable Burger", Price: 15, OldPrice: price(18), Rating: price(2.5), Img: "/burger/Burgers-4.png", Category: "Burger"},
		{ID: 5, Name: "Bean Burger", Price: 18, OldPrice: price(20), Rating: price(2.5), Img: "/burger/Burgers-5.png", Category: "Burger"},
		{ID: 6, Name: "Wild Salmon Burger", Price: 40, OldPrice: price(42), Rating: price(2.5), Img: "/burger/Burgers-6.png", Category: "Burger"},
		{ID: 7, Name: "Donut Choco", Price: 6, Rating: price(4.3), Img: "/donut/donut-1.png", Category: "Donuts"},
		{ID: 8, Name: "Donut Almon", Price: 12, Rating: price(4.3), Img: "/donut/donut-2.png", Category: "Donuts"},
		{ID: 9, Name: "Donut Strawberry", Price: 8, Rating: price(4.3), Img: "/donut/donut-3.png", Category: "Donuts"},
		{ID: 10, Name: "Donut White Chocolate", Price: 10, Rating: price(4.3), Img: "/donut/donut-4.png", Category: "Donuts"},
		{ID: 11, Name: "Donut Matcha", Price: 11, Rating: price(4.3), Img: "/donut/donut-5.png", Category: "Donuts"},
		{ID: 12, Name: "Donut Mushmellow", Price: 23, Rating: price(4.3), Img: "/donut/donut-6.png", Category: "Donuts"},
		{ID: 13, Name: "Hot Dog Grill Master", Price: 12, Rating: price(3.8), Img: "/hotdog/hotdog-1.png", Category: "Hot dog"},
		{ID: 14, Name: "Hot Dog Honey Smoke", Price: 24, Rating: price(3.8), Img: "/hotdog/hotdog-2.png", Category: "Hot dog"},
		{ID: 15, Name: "Hot Dog Classic Bite", Price: 27, Rating: price(3.8), Img: "/hotdog/hotdog-3.png", Category: "Hot dog"},
		{ID: 16, Name: "Hot Dog Street Pup", Price: 30, Rating: price(3.8), Img: "/hotdog/hotdog-4.png", Category: "Hot dog"},
		{ID: 17, Name: "Hot Dog Cheesy Melt", Price: 40, Rating: price(3.8), Img: "/hotdog/hotdog-5.png", Category: "Hot dog"},
		{ID: 18, Name: "Hot Dog Spicy Boom", Price: 35, Rating: price(3.8), Img: "/hotdog/hotdog-6.png", Category: "Hot dog"},
	}
}
