package fake

var botUserAgents = []string{
	"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
	"Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)",
	"Mozilla/5.0 (compatible; YandexBot/3.0; +http://yandex.com/bots)",
	"Mozilla/5.0 (compatible; Baiduspider/2.0; +http://www.baidu.com/search/spider.html)",
	"DuckDuckBot/1.1; (+http://duckduckgo.com/duckduckbot.html)",
	"Mozilla/5.0 (compatible; AhrefsBot/7.0; +http://ahrefs.com/robot/)",
	"Mozilla/5.0 (compatible; SemrushBot/7~bl; +http://www.semrush.com/bot.html)",
	"Mozilla/5.0 (compatible; MJ12bot/v1.4.8; http://mj12bot.com/)",
	"python-requests/2.31.0",
	"curl/8.4.0",
	"Go-http-client/1.1",
	"Scrapy/2.11.0 (+https://scrapy.org)",
}

var artists = []string{
	"Monet", "Van Gogh", "Rembrandt", "Picasso", "Vermeer", "Da Vinci", "Michelangelo",
	"Cezanne", "Matisse", "Klimt", "Kahlo", "Hokusai", "Botticelli", "Caravaggio",
}

var pokemons = []string{
	"Pikachu", "Bulbasaur", "Charmander", "Squirtle", "Jigglypuff", "Meowth", "Psyduck",
	"Snorlax", "Eevee", "Mewtwo", "Gengar", "Onix", "Magikarp", "Lapras", "Vulpix",
}

var lebowskiCharacters = []string{
	"The Dude", "Walter Sobchak", "Donny", "Maude Lebowski", "Jeffrey Lebowski",
	"Bunny Lebowski", "Jesus Quintana", "Brandt", "Da Fino", "The Stranger",
}

var lebowskiQuotes = []string{
	"The Dude abides.",
	"Yeah, well, you know, that's just, like, your opinion, man.",
	"This aggression will not stand, man.",
	"That rug really tied the room together.",
	"Mark it zero!",
	"Obviously you're not a golfer.",
	"Careful, man, there's a beverage here!",
	"Nobody calls me Lebowski. You got the wrong guy.",
}

var galaxies = []string{
	"Andromeda", "Milky Way", "Triangulum", "Whirlpool", "Sombrero", "Pinwheel",
	"Black Eye", "Cartwheel", "Sunflower", "Tadpole", "Cigar", "Large Magellanic Cloud",
}
