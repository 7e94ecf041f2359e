package words

// Built-in theme lists. The pairing picks a minority word close enough
// to the majority word that an undercover player can blend in without
// noticing they hold the wrong one.
var themeList = []Theme{
	{
		ID: "argentina", Label: "Argentina", Emoji: "🇦🇷",
		Pairs: []Pair{
			{"Fernet", "Campari"},
			{"Asado", "Choripán"},
			{"Mate", "Tereré"},
			{"Empanada", "Pastelito"},
			{"Tango", "Folklore"},
			{"Maradona", "Messi"},
			{"Dulce de leche", "Mermelada"},
			{"Milanesa", "Suprema"},
			{"Obelisco", "Cabildo"},
			{"Alfajor", "Conito"},
			{"Colectivo", "Trolebús"},
			{"Peatonal", "Galería"},
		},
	},
	{
		ID: "cordoba", Label: "Córdoba", Emoji: "⛰️",
		Pairs: []Pair{
			{"La Cañada", "El Suquía"},
			{"La Mona Jiménez", "Ulises Bueno"},
			{"Cuarteto", "Cumbia"},
			{"Villa Carlos Paz", "La Falda"},
			{"Criollo", "Bizcocho"},
			{"Fernet con coca", "Gancia con sprite"},
			{"Patio Olmos", "Nuevocentro"},
			{"Sargento Cabral", "General Paz"},
			{"Las Sierras", "La Pampa"},
			{"Talleres", "Belgrano"},
		},
	},
	{
		ID: "comida", Label: "Comida", Emoji: "🍕",
		Pairs: []Pair{
			{"Pizza", "Fugazzeta"},
			{"Hamburguesa", "Lomito"},
			{"Helado", "Flan"},
			{"Ñoquis", "Ravioles"},
			{"Locro", "Guiso"},
			{"Medialuna", "Factura"},
			{"Provoleta", "Queso brie"},
			{"Tarta", "Torta"},
			{"Sushi", "Ceviche"},
			{"Panchos", "Salchipapas"},
		},
	},
	{
		ID: "lugares", Label: "Lugares", Emoji: "🗺️",
		Pairs: []Pair{
			{"Playa", "Balneario"},
			{"Cine", "Teatro"},
			{"Boliche", "Bar"},
			{"Hospital", "Clínica"},
			{"Escuela", "Facultad"},
			{"Supermercado", "Kiosco"},
			{"Cancha", "Club"},
			{"Terminal", "Aeropuerto"},
			{"Plaza", "Parque"},
			{"Shopping", "Feria"},
		},
	},
	{
		ID: "famosos", Label: "Famosos", Emoji: "⭐",
		Pairs: []Pair{
			{"Messi", "Di María"},
			{"Charly García", "Fito Páez"},
			{"Susana Giménez", "Mirtha Legrand"},
			{"Ricardo Darín", "Guillermo Francella"},
			{"Tini", "Lali"},
			{"Bizarrap", "Duki"},
			{"Marcelo Tinelli", "Guido Kaczka"},
			{"El Dibu", "El Pato Fillol"},
		},
	},
}

var themeIndex = func() map[string]Theme {
	m := make(map[string]Theme, len(themeList))
	for _, t := range themeList {
		m[t.ID] = t
	}
	return m
}()
