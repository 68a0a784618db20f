package dictionary

// builtinWords returns the embedded dictionary used when no download is
// available. Word list drawn from UK school spelling vocabulary.
func builtinWords() map[string]string {
	return map[string]string{
		"abstract":        "existing in thought or as an idea but not having a physical or concrete existence.",
		"easel":           "a stand for holding a painter's canvas.",
		"kiln":            "a furnace or oven for burning, baking, or drying something, especially one for firing pottery.",
		"acrylic":         "a synthetic resin used in paints and plastics.",
		"exhibition":      "a public display of works of art or items of interest.",
		"landscape":       "all the visible features of an area of land, often considered in terms of their aesthetic appeal.",
		"charcoal":        "a porous black solid, consisting of an amorphous form of carbon, obtained as a residue when wood, bone, or other organic matter is heated in the absence of air.",
		"foreground":      "the part of a view that is nearest to the observer.",
		"palette":         "a thin board or slab on which an artist lays and mixes colors.",
		"collage":         "an artistic composition made of various materials (e.g., paper, cloth, or wood) glued on a surface.",
		"frieze":          "a broad horizontal band of sculpted or painted decoration, especially on a wall near the ceiling.",
		"pastel":          "a crayon made of powdered pigments bound with gum or resin.",
		"collection":      "a group of objects of one type that have been collected.",
		"gallery":         "a room or building for the display or sale of works of art.",
		"perspective":     "the art of representing three-dimensional objects on a two-dimensional surface so as to give the right impression of their height, width, depth, and position in relation to each other.",
		"colour":          "the property possessed by an object of producing different sensations on the eye as a result of the way it reflects or emits light.",
		"highlight":       "an outstanding part of an event or period of time.",
		"portrait":        "a painting, drawing, photograph, or engraving of a person, especially one depicting only the face or head and shoulders.",
		"crosshatch":      "shade (an area of a drawing or engraving) with intersecting sets of parallel lines.",
		"illusion":        "a thing that is or is likely to be wrongly perceived or interpreted by the senses.",
		"sketch":          "a rough or unfinished drawing or painting, often made to assist in making a more finished picture.",
		"dimension":       "a measurable extent of some kind, such as length, breadth, depth, or height.",
		"impasto":         "the technique of laying on paint thickly so that it stands out from a surface.",
		"spectrum":        "a band of colors, as seen in a rainbow, produced by separation of the components of light by their different degrees of refraction according to wavelength.",
		"display":         "an arrangement of something for public view.",
		"aesthetic":       "concerned with beauty or the appreciation of beauty.",
		"hygiene":         "conditions or practices conducive to maintaining health and preventing disease, especially through cleanliness.",
		"presentation":    "the manner or style in which something is given, offered, or displayed.",
		"brief":           "of short duration.",
		"ingredient":      "any of the foods or substances that are combined to make a particular dish.",
		"production":      "the action of making or manufacturing from components or raw materials, or the process of being so manufactured.",
		"carbohydrate":    "any of a large group of organic compounds occurring in foods and living tissues and including sugars, starch, and cellulose.",
		"innovation":      "the action or process of innovating.",
		"protein":         "any of a class of nitrogenous organic compounds that consist of large molecules composed of one or more long chains of amino acids and are an essential part of all living organisms.",
		"component":       "a part or element of a larger whole.",
		"knife":           "an instrument composed of a blade fixed into a handle, used for cutting or as a weapon.",
		"knives":          "plural of knife.",
		"recipe":          "a set of instructions for preparing a particular dish, including a list of the ingredients required.",
		"design":          "a plan or drawing produced to show the look and function or workings of a building, garment, or other object before it is made.",
		"linen":           "cloth woven from flax.",
		"diet":            "the kinds of food that a person, animal, or community habitually eats.",
		"machine":         "an apparatus using or applying mechanical power and having several parts, each with a definite function and together performing a particular task.",
		"specification":   "an act of identifying something precisely or of stating a precise requirement.",
		"disassemble":     "take (something) apart.",
		"manufacture":     "make (something) on a large scale using machinery.",
		"technology":      "the application of scientific knowledge for practical purposes, especially in industry.",
		"evaluation":      "the making of a judgment about the amount, number, or value of something; assessment.",
		"mineral":         "a solid inorganic substance of natural occurrence.",
		"tension":         "the state of being stretched tight.",
		"fabric":          "cloth or other material produced by weaving or knitting fibers.",
		"natural":         "existing in or caused by nature; not made or caused by humankind.",
		"textile":         "a type of cloth or woven fabric.",
		"fibre":           "a thread or filament from which a vegetable tissue, mineral substance, or textile is formed.",
		"nutrition":       "the process of providing or obtaining the food necessary for health and growth.",
		"vitamin":         "any of a group of organic compounds that are essential for normal growth and nutrition and are required in small quantities in the diet because they cannot be synthesized by the body.",
		"flour":           "a powder obtained by grinding grain, typically wheat, and used to make bread, cakes, and pastry.",
		"polyester":       "a synthetic resin in which the polymer units are linked by ester groups, used in the manufacture of synthetic fibers.",
		"flowchart":       "a diagram of the sequence of movements or actions of people or things involved in a complex system or activity.",
		"portfolio":       "a large, thin, flat case for carrying loose papers or drawings.",
		"advertise":       "describe or draw attention to (a product, service, or event) in a public medium in order to promote sales or attendance.",
		"advertisement":   "a notice or announcement in a public medium promoting a product, service, or event or publicizing a job vacancy.",
		"figurative":      "departing from a literal use of words; metaphorical.",
		"preposition":     "a word governing, and usually preceding, a noun or pronoun and expressing a relation to another word or element in the clause.",
		"alliteration":    "the occurrence of the same letter or sound at the beginning of adjacent or closely connected words.",
		"genre":           "a style or category of art, music, or literature.",
		"resolution":      "a firm decision to do or not to do something.",
		"apostrophe":      "a punctuation mark (') used to indicate either possession or the omission of letters or numbers.",
		"grammar":         "the whole system and structure of a language or of languages in general.",
		"rhyme":           "correspondence of sound between words or the endings of words, especially when these are used at the ends of lines of poetry.",
		"atmosphere":      "the envelope of gases surrounding the earth or another planet.",
		"imagery":         "visually descriptive or figurative language, especially in a literary work.",
		"scene":           "the place where an incident in real life or fiction occurs or occurred.",
		"chorus":          "a large organized group of singers, especially one that performs in a concert or is attached to an opera.",
		"metaphor":        "a figure of speech in which a word or phrase is applied to an object or action to which it is not literally applicable.",
		"simile":          "a figure of speech involving the comparison of one thing with another thing of a different kind, used to make a description more emphatic or vivid.",
		"clause":          "a unit of grammatical organization next below the sentence in rank.",
		"myth":            "a traditional story, especially one concerning the early history of a people or explaining some natural or social phenomenon.",
		"soliloquy":       "an act of speaking one's thoughts aloud when by oneself or regardless of any hearers, especially by a character in a play.",
		"narrative":       "a spoken or written account of connected events; a story.",
		"narrator":        "a person who narrates something, especially a character who recounts the events of a novel or play.",
		"subordinate":     "lower in rank or position.",
		"comma":           "a punctuation mark (,) indicating a pause between parts of a sentence or separating items in a list.",
		"onomatopoeia":    "the formation of a word from a sound associated with what is named.",
		"suffix":          "a morpheme added at the end of a word to form a derivative.",
		"comparison":      "the act or instance of comparing.",
		"pamphlet":        "a small booklet or leaflet containing information or arguments about a single subject.",
		"synonym":         "a word or phrase that means exactly or nearly the same as another word or phrase in the same language.",
		"conjunction":     "a word used to connect clauses or sentences or to coordinate words in the same clause.",
		"paragraph":       "a distinct section of a piece of writing, usually dealing with a single theme.",
		"tabloid":         "a newspaper having pages half the size of those of a standard newspaper, typically popular in style.",
		"consonant":       "a speech sound that is not a vowel.",
		"personification": "the attribution of a personal nature or human characteristics to something non-human.",
		"vocabulary":      "the set of words used in a particular language.",
		"dialogue":        "conversation between two or more people as a feature of a book, play, or film.",
		"playwright":      "a person who writes plays.",
		"vowel":           "a speech sound made with the vocal tract open, forming the nucleus of a syllable.",
		"exclamation":     "a sudden cry or remark, especially expressing surprise, anger, or pain.",
		"plural":          "the form of a word that is used to denote more than one.",
		"expression":      "the process of making known one's thoughts or feelings.",
		"prefix":          "a word, letter, or number placed before another.",
		"geography":       "the study of the physical features of the earth and its atmosphere, and of human activity as it affects and is affected by these.",
		"abroad":          "in or to a foreign country or countries.",
		"function":        "an activity or purpose natural to or intended for a person or thing.",
		"poverty":         "the state of being extremely poor.",
		"amenity":         "a desirable or useful feature or facility of a building or place.",
		"globe":           "the earth.",
		"provision":       "the action of providing or supplying something for use.",
		"atlas":           "a book of maps or charts.",
		"habitat":         "the natural home or environment of an animal, plant, or other organism.",
		"region":          "an area, especially part of a country or the world having definable characteristics but not always fixed boundaries.",
		"regional":        "relating to or characteristic of a region.",
		"authority":       "the power or right to give orders, make decisions, and enforce obedience.",
		"infrastructure":  "the basic physical and organizational structures and facilities needed for the operation of a society or enterprise.",
		"rural":           "in, relating to, or characteristic of the countryside rather than the town.",
		"climate":         "the weather conditions prevailing in an area in general or over a long period.",
		"international":   "existing, occurring, or operating between nations.",
		"settlement":      "an official agreement intended to resolve a dispute or conflict.",
		"contour":         "an outline, especially one representing or bounding the shape or form of something.",
		"situation":       "a set of circumstances in which one finds oneself; a state of affairs.",
		"country":         "a nation with its own government, occupying a particular territory.",
		"latitude":        "the angular distance of a place north or south of the earth's equator, usually expressed in degrees and minutes.",
		"tourist":         "a person who is traveling or visiting a place for pleasure.",
		"tourism":         "the commercial organization and operation of holidays and visits to places of interest.",
		"county":          "a territorial division of some countries, forming the chief unit of local administration.",
		"location":        "a particular place or position.",
		"transport":       "take or carry (people or goods) from one place to another by means of a vehicle, aircraft, or ship.",
		"transportation":  "the action of transporting someone or something or the process of being transported.",
		"desert":          "a barren area of landscape where little precipitation occurs and living conditions are hostile for plant and animal life.",
		"longitude":       "the angular distance of a place east or west of the meridian at Greenwich, England, usually expressed in degrees and minutes.",
		"urban":           "in, relating to, or characteristic of a town or city.",
		"employment":      "the condition of having paid work.",
		"nation":          "a large body of people united by common descent, history, culture, or language, inhabiting a particular country or territory.",
		"national":        "relating to a nation; common to or characteristic of a whole nation.",
		"wealth":          "an abundance of valuable resources or possessions; riches.",
		"erosion":         "the process of eroding or being eroded by wind, water, or other natural agents.",
		"physical":        "relating to the body as opposed to the mind.",
		"weather":         "the state of the atmosphere at a particular place and time as regards heat, cloudiness, dryness, sunshine, wind, and rain.",
		"estuary":         "the tidal mouth of a large river, where the tide meets the stream.",
		"pollution":       "the presence in or introduction into the environment of a substance which has harmful or poisonous effects.",
		"history":         "the study of past events, particularly in human affairs.",
		"agriculture":     "the science or practice of farming, including cultivation of the soil for the growing of crops and the rearing of animals.",
	}
}
