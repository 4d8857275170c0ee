package yt

// DTO pour l'API YouTube Data v3. On ne mappe que les champs dont on a
// besoin ; les champs inconnus sont ignorés au décodage.

// apiErrorDetail : enveloppe d'erreur renvoyée par l'API. Certaines
// erreurs (clé invalide, quota) arrivent avec un corps "error" qu'il
// faut tester avant les items.
type apiErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// searchResponse : réponse de /search?type=channel
type searchResponse struct {
	Error *apiErrorDetail `json:"error,omitempty"`
	Items []struct {
		ID struct {
			ChannelID string `json:"channelId"`
		} `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// channelsResponse : réponse de /channels?part=contentDetails.
// RelatedPlaylists.Uploads est la playlist qui contient tous les uploads
// de la chaîne, dans l'ordre antéchronologique.
type channelsResponse struct {
	Error *apiErrorDetail `json:"error,omitempty"`
	Items []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// playlistItemsResponse : réponse de /playlistItems?part=snippet
type playlistItemsResponse struct {
	Error *apiErrorDetail `json:"error,omitempty"`
	Items []struct {
		Snippet struct {
			Title      string `json:"title"`
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}
