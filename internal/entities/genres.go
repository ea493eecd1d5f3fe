package entities

// Genres is the controlled genre vocabulary offered by the presentation
// layer. It is a convention, not a storage constraint: the books table
// accepts any non-empty genre string.
var Genres = []string{
	// Ficción general
	"Novela", "Cuento", "Microrrelato", "Realismo Mágico", "Fábula",

	// Ficción específica
	"Ciencia Ficción", "Fantasía", "Terror", "Distopía", "Ucronía",
	"Romance", "Romance Histórico", "Romance Contemporáneo", "Policial",
	"Thriller", "Suspenso", "Misterio", "Aventura", "Western",

	// No ficción
	"Biografía", "Autobiografía", "Memorias", "Diario", "Ensayo",
	"Periodismo", "Crónica", "Reportaje", "Historia", "Arte",
	"Filosofía", "Psicología", "Sociología", "Política",

	// Desarrollo personal
	"Autoayuda", "Crecimiento Personal", "Productividad", "Motivación",
	"Finanzas Personales", "Liderazgo", "Emprendimiento",

	// Educativos
	"Educación", "Pedagogía", "Didáctica", "Referencia", "Diccionario",
	"Enciclopedia", "Manual", "Guía",

	// Arte y creatividad
	"Poesía", "Teatro", "Guión", "Cómic", "Novela Gráfica", "Manga",
	"Fotografía", "Diseño", "Arquitectura",

	// Infantil / juvenil
	"Infantil", "Juvenil", "Young Adult", "Middle Grade",

	// Especializados
	"Ciencia", "Tecnología", "Medicina", "Derecho", "Economía",
	"Negocios", "Marketing", "Cocina", "Viajes", "Deportes",
	"Ecología", "Espiritualidad", "Religión", "Esoterismo",

	// Otros
	"Humor", "Sátira", "Erótico", "Fanfiction", "Experimental",
	"Otro",
}
