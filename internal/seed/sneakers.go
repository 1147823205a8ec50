package seed

const imageURLTemplate = "https://images.unsplash.com/%s?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

type sneaker struct {
	brand       string
	model       string
	size        float64
	colorName   string
	price       int64
	description string
	category    string
	gender      string
	photo       string
	releaseYear int
}

var defaultSneakers = []sneaker{
	{brand: "Nike", model: "Air Jordan 1 Retro High", size: 42, colorName: "Black/Red", price: 18999, description: "Iconic 1985 basketball silhouette built from premium materials.", category: "Basketball", gender: "Men", photo: "photo-1600269452121-4f2416e55c28", releaseYear: 2023},
	{brand: "Adidas", model: "Yeezy Boost 350 V2", size: 43.5, colorName: "Zebra", price: 25999, description: "Limited release with Boost cushioning for all-day comfort.", category: "Lifestyle", gender: "Men", photo: "photo-1560769624-6b03633ba29e", releaseYear: 2022},
	{brand: "Nike", model: "Dunk Low Retro", size: 41, colorName: "Panda", price: 12999, description: "Classic skate shoe in a versatile black and white colourway.", category: "Skateboarding", gender: "Men", photo: "photo-1595950653106-6c9ebd614d3a", releaseYear: 2023},
	{brand: "New Balance", model: "550", size: 44, colorName: "White/Green", price: 14999, description: "Retro basketball sneaker in premium leather and suede.", category: "Lifestyle", gender: "Men", photo: "photo-1606107557195-0e29a4b5b4aa", releaseYear: 2022},
	{brand: "Nike", model: "Air Force 1 Low", size: 42.5, colorName: "Triple White", price: 10999, description: "The 1982 legend in clean everyday white.", category: "Casual", gender: "Men", photo: "photo-1600185365483-26d7a4cc7519", releaseYear: 2023},
	{brand: "Nike", model: "Air Max 97", size: 44.5, colorName: "Silver Bullet", price: 16999, description: "Futuristic lines inspired by Japanese bullet trains.", category: "Running", gender: "Men", photo: "photo-1605348532760-6753d2c43329", releaseYear: 2022},
	{brand: "Nike", model: "Blazer Mid '77", size: 42, colorName: "Vintage White", price: 11999, description: "Vintage basketball style that goes with anything.", category: "Casual", gender: "Men", photo: "photo-1560769624-6b03633ba29e", releaseYear: 2023},
	{brand: "Reebok", model: "Classic Leather", size: 43, colorName: "White", price: 7999, description: "The 1983 classic with soft leather and lasting comfort.", category: "Lifestyle", gender: "Men", photo: "photo-1595950653106-6c9ebd614d3a", releaseYear: 2023},
	{brand: "Nike", model: "Air Force 1 '07", size: 38, colorName: "White/Pink", price: 9999, description: "The icon in a soft pink shade for everyday outfits.", category: "Casual", gender: "Women", photo: "photo-1549298916-b41d501d3772", releaseYear: 2023},
	{brand: "Adidas", model: "Stan Smith", size: 37.5, colorName: "White/Green", price: 8999, description: "Classic tennis shoe with a minimalist design.", category: "Casual", gender: "Women", photo: "photo-1606107557195-0e29a4b5b4aa", releaseYear: 2023},
	{brand: "Nike", model: "React Element 55", size: 39, colorName: "Light Cream", price: 11999, description: "React cushioning in an elegant cream colourway.", category: "Lifestyle", gender: "Women", photo: "photo-1560769624-6b03633ba29e", releaseYear: 2023},
	{brand: "Puma", model: "RS-X³ Puzzle", size: 38.5, colorName: "Pink/White", price: 13999, description: "Bold 90s styling with plenty of comfort.", category: "Lifestyle", gender: "Women", photo: "photo-1595950653106-6c9ebd614d3a", releaseYear: 2023},
	{brand: "Adidas", model: "Superstar", size: 37, colorName: "Black/White", price: 10999, description: "The three-stripe street style classic.", category: "Casual", gender: "Women", photo: "photo-1600185365483-26d7a4cc7519", releaseYear: 2023},
	{brand: "Nike", model: "Cortez", size: 38, colorName: "White/Purple", price: 9999, description: "Retro runner that mixes comfort and style.", category: "Running", gender: "Women", photo: "photo-1542291026-7eec264c27ff", releaseYear: 2023},
	{brand: "Nike", model: "Air Max 90", size: 32, colorName: "Black/White", price: 7999, description: "Classic Air cushioning for active kids.", category: "Casual", gender: "Kids", photo: "photo-1605348532760-6753d2c43329", releaseYear: 2023},
	{brand: "Adidas", model: "Gazelle Kids", size: 31, colorName: "Blue/White", price: 6999, description: "A small copy of the classic in quality materials.", category: "Casual", gender: "Kids", photo: "photo-1606107557195-0e29a4b5b4aa", releaseYear: 2023},
	{brand: "Puma", model: "Suede Classic Kids", size: 30.5, colorName: "Red/White", price: 5999, description: "Bright sneakers for young trendsetters.", category: "Casual", gender: "Kids", photo: "photo-1560769624-6b03633ba29e", releaseYear: 2023},
	{brand: "Nike", model: "Force 1 Low Kids", size: 29, colorName: "White/Blue", price: 6999, description: "The kids version of a legend.", category: "Casual", gender: "Kids", photo: "photo-1595950653106-6c9ebd614d3a", releaseYear: 2023},
	{brand: "Adidas", model: "Superstar Kids", size: 28, colorName: "White/Black", price: 6499, description: "Street style stars for the smallest feet.", category: "Casual", gender: "Kids", photo: "photo-1600185365483-26d7a4cc7519", releaseYear: 2023},
	{brand: "Adidas", model: "Ultraboost 22", size: 43, colorName: "Black", price: 18999, description: "Performance running shoe with Boost cushioning.", category: "Running", gender: "Men", photo: "photo-1542291026-7eec264c27ff", releaseYear: 2023},
	{brand: "Nike", model: "Pegasus 39", size: 42, colorName: "Black/White", price: 12999, description: "Versatile running shoe for daily training.", category: "Running", gender: "Men", photo: "photo-1606107557195-0e29a4b5b4aa", releaseYear: 2023},
	{brand: "Nike", model: "Zoom Pegasus Turbo", size: 38.5, colorName: "Pink/Black", price: 14999, description: "Fast women's running shoe with maximum cushioning.", category: "Running", gender: "Women", photo: "photo-1560769624-6b03633ba29e", releaseYear: 2023},
	{brand: "Adidas", model: "NMD_R1", size: 37.5, colorName: "White/Pink", price: 15999, description: "Modern Boost sneaker with an urban look.", category: "Lifestyle", gender: "Women", photo: "photo-1595950653106-6c9ebd614d3a", releaseYear: 2023},
}
